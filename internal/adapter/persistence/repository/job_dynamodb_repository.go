package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsCustomerIDIndex  = "customer_id-index"
	jobsProviderIDIndex  = "provider_id-index"
)

type billingItem struct {
	Mode                  string `dynamodbav:"mode"`
	ActualDurationMinutes int    `dynamodbav:"actual_duration_minutes"`
	BilledMinutes         int    `dynamodbav:"billed_minutes"`
	FinalLaborCost        string `dynamodbav:"final_labor_cost"`
	FinalMaterialsCost    string `dynamodbav:"final_materials_cost"`
	Subtotal              string `dynamodbav:"subtotal"`
	PlatformFeeAmount     string `dynamodbav:"platform_fee_amount"`
	FinalTotalCost        string `dynamodbav:"final_total_cost"`
	ProviderPayoutAmount  string `dynamodbav:"provider_payout_amount"`
	PayoutHeld            bool   `dynamodbav:"payout_held"`
	PayoutReleasedAt      string `dynamodbav:"payout_released_at,omitempty"`
}

type jobItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id"`
	ProviderID  string `dynamodbav:"provider_id"`
	Status      string `dynamodbav:"status"`
	BillingMode string `dynamodbav:"billing_mode"`
	HourlyRate  string `dynamodbav:"hourly_rate,omitempty"`

	QuoteLabor       string `dynamodbav:"quote_labor,omitempty"`
	QuoteMaterials   string `dynamodbav:"quote_materials,omitempty"`
	QuoteTotal       string `dynamodbav:"quote_total,omitempty"`
	QuoteSubmittedAt string `dynamodbav:"quote_submitted_at,omitempty"`
	QuoteAccepted    bool   `dynamodbav:"quote_accepted"`
	QuoteAcceptedAt  string `dynamodbav:"quote_accepted_at,omitempty"`
	QuoteLocked      bool   `dynamodbav:"quote_locked"`

	// Code expiries are epoch nanoseconds so the consume conditions can
	// compare them numerically inside the ConditionExpression. Zero means
	// the code never expires.
	StartCodeHash      string `dynamodbav:"start_code_hash,omitempty"`
	StartCodeIssuedAt  string `dynamodbav:"start_code_issued_at,omitempty"`
	StartCodeExpiresAt int64  `dynamodbav:"start_code_expires_at,omitempty"`
	StartCodeConsumed  bool   `dynamodbav:"start_code_consumed"`

	EndCodeHash      string `dynamodbav:"end_code_hash,omitempty"`
	EndCodeIssuedAt  string `dynamodbav:"end_code_issued_at,omitempty"`
	EndCodeExpiresAt int64  `dynamodbav:"end_code_expires_at,omitempty"`
	EndCodeConsumed  bool   `dynamodbav:"end_code_consumed"`

	ScheduledAt    string `dynamodbav:"scheduled_at"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	JobStartedAt   string `dynamodbav:"job_started_at,omitempty"`
	JobCompletedAt string `dynamodbav:"job_completed_at,omitempty"`

	Billing *billingItem `dynamodbav:"billing,omitempty"`

	DisputeFlag   bool   `dynamodbav:"dispute_flag"`
	DisputeReason string `dynamodbav:"dispute_reason,omitempty"`

	PaymentID         string `dynamodbav:"payment_id,omitempty"`
	PaymentPaidAt     string `dynamodbav:"payment_paid_at,omitempty"`
	PaymentPayloadRaw string `dynamodbav:"payment_payload_raw,omitempty"`
}

// JobDynamoRepository persists the Job aggregate as a single DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: provider_id-index (PK: provider_id)
//
// Every mutating method ships its precondition inside the request's
// ConditionExpression, so the check and the write are one indivisible
// operation on the store. A ConditionalCheckFailedException surfaces as
// interfaces.ErrConditionFailed and means nothing was written.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrConditionFailed
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	return r.queryIndex(ctx, jobsCustomerIDIndex, "customer_id", customerID)
}

func (r *JobDynamoRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.Job, error) {
	return r.queryIndex(ctx, jobsProviderIDIndex, "provider_id", providerID)
}

func (r *JobDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.JobStatus) (entities.Job, error) {
	return r.update(ctx, id, updateSpec{
		expr:      "SET #status = :to, #updated_at = :now",
		condition: "attribute_exists(#id) AND #status = :from",
		names:     map[string]string{"#status": "status", "#updated_at": "updated_at"},
		values: map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":from": &types.AttributeValueMemberS{Value: string(from)},
		},
	})
}

func (r *JobDynamoRepository) PutQuote(ctx context.Context, id string, q entities.Quote, prevSubmittedAt *time.Time) (entities.Job, error) {
	spec := updateSpec{
		expr: "SET #quote_labor = :labor, #quote_materials = :materials, #quote_total = :total, " +
			"#quote_submitted_at = :submitted_at, #quote_accepted = :false, #quote_locked = :false, #updated_at = :now " +
			"REMOVE #quote_accepted_at",
		names: map[string]string{
			"#status":            "status",
			"#quote_labor":       "quote_labor",
			"#quote_materials":   "quote_materials",
			"#quote_total":       "quote_total",
			"#quote_submitted_at": "quote_submitted_at",
			"#quote_accepted":    "quote_accepted",
			"#quote_accepted_at": "quote_accepted_at",
			"#quote_locked":      "quote_locked",
			"#updated_at":        "updated_at",
		},
		values: map[string]types.AttributeValue{
			":labor":        &types.AttributeValueMemberS{Value: floatToString(q.Labor)},
			":materials":    &types.AttributeValueMemberS{Value: floatToString(q.Materials)},
			":total":        &types.AttributeValueMemberS{Value: floatToString(q.Total)},
			":submitted_at": &types.AttributeValueMemberS{Value: formatTime(q.SubmittedAt)},
			":false":        &types.AttributeValueMemberBOOL{Value: false},
			":confirmed":    &types.AttributeValueMemberS{Value: string(entities.JobStatusConfirmed)},
		},
	}
	if prevSubmittedAt == nil {
		spec.condition = "attribute_exists(#id) AND #status = :confirmed AND attribute_not_exists(#quote_submitted_at)"
	} else {
		spec.condition = "attribute_exists(#id) AND #status = :confirmed AND #quote_submitted_at = :prev AND #quote_locked = :false"
		spec.values[":prev"] = &types.AttributeValueMemberS{Value: formatTime(*prevSubmittedAt)}
	}
	return r.update(ctx, id, spec)
}

func (r *JobDynamoRepository) AcceptQuote(ctx context.Context, id string, submittedAt, acceptedAt time.Time) (entities.Job, error) {
	return r.update(ctx, id, updateSpec{
		expr: "SET #quote_accepted = :true, #quote_locked = :true, #quote_accepted_at = :accepted_at, #updated_at = :now",
		condition: "attribute_exists(#id) AND #status = :confirmed AND #quote_submitted_at = :submitted_at AND #quote_locked = :false",
		names: map[string]string{
			"#status":            "status",
			"#quote_submitted_at": "quote_submitted_at",
			"#quote_accepted":    "quote_accepted",
			"#quote_accepted_at": "quote_accepted_at",
			"#quote_locked":      "quote_locked",
			"#updated_at":        "updated_at",
		},
		values: map[string]types.AttributeValue{
			":true":         &types.AttributeValueMemberBOOL{Value: true},
			":false":        &types.AttributeValueMemberBOOL{Value: false},
			":confirmed":    &types.AttributeValueMemberS{Value: string(entities.JobStatusConfirmed)},
			":submitted_at": &types.AttributeValueMemberS{Value: formatTime(submittedAt)},
			":accepted_at":  &types.AttributeValueMemberS{Value: formatTime(acceptedAt)},
		},
	})
}

func (r *JobDynamoRepository) ClearQuote(ctx context.Context, id string, submittedAt time.Time) (entities.Job, error) {
	return r.update(ctx, id, updateSpec{
		expr: "REMOVE #quote_labor, #quote_materials, #quote_total, #quote_submitted_at, #quote_accepted_at " +
			"SET #quote_accepted = :false, #quote_locked = :false, #updated_at = :now",
		condition: "attribute_exists(#id) AND #quote_submitted_at = :submitted_at AND #quote_locked = :false",
		names: map[string]string{
			"#quote_labor":       "quote_labor",
			"#quote_materials":   "quote_materials",
			"#quote_total":       "quote_total",
			"#quote_submitted_at": "quote_submitted_at",
			"#quote_accepted":    "quote_accepted",
			"#quote_accepted_at": "quote_accepted_at",
			"#quote_locked":      "quote_locked",
			"#updated_at":        "updated_at",
		},
		values: map[string]types.AttributeValue{
			":false":        &types.AttributeValueMemberBOOL{Value: false},
			":submitted_at": &types.AttributeValueMemberS{Value: formatTime(submittedAt)},
		},
	})
}

func (r *JobDynamoRepository) PutStartCode(ctx context.Context, id string, code entities.AuthCode, replace bool, priorHash string) (entities.Job, error) {
	spec := updateSpec{
		expr: "SET #hash = :hash, #issued_at = :issued_at, #expires_at = :expires_at, #consumed = :false, #updated_at = :now",
		names: map[string]string{
			"#status":       "status",
			"#quote_locked": "quote_locked",
			"#hash":         "start_code_hash",
			"#issued_at":    "start_code_issued_at",
			"#expires_at":   "start_code_expires_at",
			"#consumed":     "start_code_consumed",
			"#updated_at":   "updated_at",
		},
		values: map[string]types.AttributeValue{
			":hash":       &types.AttributeValueMemberS{Value: code.Hash},
			":issued_at":  &types.AttributeValueMemberS{Value: formatTime(code.IssuedAt)},
			":expires_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(epochNanos(code.ExpiresAt), 10)},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":confirmed":  &types.AttributeValueMemberS{Value: string(entities.JobStatusConfirmed)},
		},
	}
	if replace {
		spec.condition = "attribute_exists(#id) AND #status = :confirmed AND #quote_locked = :true AND #hash = :prior"
		spec.values[":prior"] = &types.AttributeValueMemberS{Value: priorHash}
	} else {
		spec.condition = "attribute_exists(#id) AND #status = :confirmed AND #quote_locked = :true AND attribute_not_exists(#hash)"
	}
	return r.update(ctx, id, spec)
}

func (r *JobDynamoRepository) PutEndCode(ctx context.Context, id string, code entities.AuthCode, replace bool, priorHash string) (entities.Job, error) {
	spec := updateSpec{
		expr: "SET #hash = :hash, #issued_at = :issued_at, #expires_at = :expires_at, #consumed = :false, #updated_at = :now",
		names: map[string]string{
			"#status":     "status",
			"#hash":       "end_code_hash",
			"#issued_at":  "end_code_issued_at",
			"#expires_at": "end_code_expires_at",
			"#consumed":   "end_code_consumed",
			"#updated_at": "updated_at",
		},
		values: map[string]types.AttributeValue{
			":hash":        &types.AttributeValueMemberS{Value: code.Hash},
			":issued_at":   &types.AttributeValueMemberS{Value: formatTime(code.IssuedAt)},
			":expires_at":  &types.AttributeValueMemberN{Value: strconv.FormatInt(epochNanos(code.ExpiresAt), 10)},
			":false":       &types.AttributeValueMemberBOOL{Value: false},
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.JobStatusInProgress)},
		},
	}
	if replace {
		spec.condition = "attribute_exists(#id) AND #status = :in_progress AND #hash = :prior"
		spec.values[":prior"] = &types.AttributeValueMemberS{Value: priorHash}
	} else {
		spec.condition = "attribute_exists(#id) AND #status = :in_progress AND attribute_not_exists(#hash)"
	}
	return r.update(ctx, id, spec)
}

// ConsumeStartCode is the critical section of the start handshake: the code
// check, the expiry check, its consumption and the status transition commit
// together or not at all.
func (r *JobDynamoRepository) ConsumeStartCode(ctx context.Context, id, hash string, startedAt time.Time) (entities.Job, error) {
	return r.update(ctx, id, updateSpec{
		expr: "SET #status = :in_progress, #consumed = :true, #job_started_at = :started_at, #updated_at = :now",
		condition: "attribute_exists(#id) AND #status = :confirmed AND #hash = :hash AND #consumed = :false AND " +
			"(#expires_at = :no_expiry OR #expires_at > :now_epoch)",
		names: map[string]string{
			"#status":         "status",
			"#hash":           "start_code_hash",
			"#consumed":       "start_code_consumed",
			"#expires_at":     "start_code_expires_at",
			"#job_started_at": "job_started_at",
			"#updated_at":     "updated_at",
		},
		values: map[string]types.AttributeValue{
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.JobStatusInProgress)},
			":confirmed":   &types.AttributeValueMemberS{Value: string(entities.JobStatusConfirmed)},
			":hash":        &types.AttributeValueMemberS{Value: hash},
			":true":        &types.AttributeValueMemberBOOL{Value: true},
			":false":       &types.AttributeValueMemberBOOL{Value: false},
			":no_expiry":   &types.AttributeValueMemberN{Value: "0"},
			":now_epoch":   &types.AttributeValueMemberN{Value: strconv.FormatInt(startedAt.UnixNano(), 10)},
			":started_at":  &types.AttributeValueMemberS{Value: formatTime(startedAt)},
		},
	})
}

// ConsumeEndCode additionally stamps the completion time and stores the
// billing record in the same write, keeping "billing exists iff the job
// reached awaiting_payment" true at every commit.
func (r *JobDynamoRepository) ConsumeEndCode(ctx context.Context, id, hash string, completedAt time.Time, billing entities.BillingRecord) (entities.Job, error) {
	billingAV, err := attributevalue.Marshal(toBillingItem(billing))
	if err != nil {
		return entities.Job{}, err
	}

	return r.update(ctx, id, updateSpec{
		expr: "SET #status = :awaiting, #consumed = :true, #job_completed_at = :completed_at, #billing = :billing, #updated_at = :now",
		condition: "attribute_exists(#id) AND #status = :in_progress AND #hash = :hash AND #consumed = :false AND " +
			"(#expires_at = :no_expiry OR #expires_at > :now_epoch) AND attribute_not_exists(#billing)",
		names: map[string]string{
			"#status":           "status",
			"#hash":             "end_code_hash",
			"#consumed":         "end_code_consumed",
			"#expires_at":       "end_code_expires_at",
			"#job_completed_at": "job_completed_at",
			"#billing":          "billing",
			"#updated_at":       "updated_at",
		},
		values: map[string]types.AttributeValue{
			":awaiting":     &types.AttributeValueMemberS{Value: string(entities.JobStatusAwaitingPayment)},
			":in_progress":  &types.AttributeValueMemberS{Value: string(entities.JobStatusInProgress)},
			":hash":         &types.AttributeValueMemberS{Value: hash},
			":true":         &types.AttributeValueMemberBOOL{Value: true},
			":false":        &types.AttributeValueMemberBOOL{Value: false},
			":no_expiry":    &types.AttributeValueMemberN{Value: "0"},
			":now_epoch":    &types.AttributeValueMemberN{Value: strconv.FormatInt(completedAt.UnixNano(), 10)},
			":completed_at": &types.AttributeValueMemberS{Value: formatTime(completedAt)},
			":billing":      billingAV,
		},
	})
}

func (r *JobDynamoRepository) RecordPayment(ctx context.Context, id, paymentID string, payload json.RawMessage, paidAt time.Time) (entities.Job, error) {
	return r.update(ctx, id, updateSpec{
		expr: "SET #status = :completed, #payment_id = :payment_id, #payment_paid_at = :paid_at, #payment_payload_raw = :payload, #updated_at = :now",
		condition: "attribute_exists(#id) AND #status = :awaiting AND attribute_exists(#billing)",
		names: map[string]string{
			"#status":              "status",
			"#billing":             "billing",
			"#payment_id":          "payment_id",
			"#payment_paid_at":     "payment_paid_at",
			"#payment_payload_raw": "payment_payload_raw",
			"#updated_at":          "updated_at",
		},
		values: map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberS{Value: string(entities.JobStatusCompleted)},
			":awaiting":   &types.AttributeValueMemberS{Value: string(entities.JobStatusAwaitingPayment)},
			":payment_id": &types.AttributeValueMemberS{Value: paymentID},
			":paid_at":    &types.AttributeValueMemberS{Value: formatTime(paidAt)},
			":payload":    &types.AttributeValueMemberS{Value: string(payload)},
		},
	})
}

func (r *JobDynamoRepository) SetDispute(ctx context.Context, id, reason string) (entities.Job, error) {
	return r.update(ctx, id, updateSpec{
		expr:      "SET #dispute_flag = :true, #dispute_reason = :reason, #updated_at = :now",
		condition: "attribute_exists(#id) AND #status <> :completed AND #status <> :cancelled",
		names: map[string]string{
			"#status":         "status",
			"#dispute_flag":   "dispute_flag",
			"#dispute_reason": "dispute_reason",
			"#updated_at":     "updated_at",
		},
		values: map[string]types.AttributeValue{
			":true":      &types.AttributeValueMemberBOOL{Value: true},
			":reason":    &types.AttributeValueMemberS{Value: reason},
			":completed": &types.AttributeValueMemberS{Value: string(entities.JobStatusCompleted)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.JobStatusCancelled)},
		},
	})
}

func (r *JobDynamoRepository) ResolveDispute(ctx context.Context, id string) (entities.Job, error) {
	j, err := r.update(ctx, id, updateSpec{
		expr:      "SET #dispute_flag = :false, #updated_at = :now REMOVE #dispute_reason",
		condition: "attribute_exists(#id) AND #dispute_flag = :true",
		names: map[string]string{
			"#dispute_flag":   "dispute_flag",
			"#dispute_reason": "dispute_reason",
			"#updated_at":     "updated_at",
		},
		values: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		return entities.Job{}, err
	}

	// Lift the payout hold left by a finalize that ran mid-dispute.
	if j.Billing != nil && j.Billing.PayoutHeld {
		return r.update(ctx, id, updateSpec{
			expr:      "SET #billing.#payout_held = :false, #updated_at = :now",
			condition: "attribute_exists(#billing)",
			names: map[string]string{
				"#billing":     "billing",
				"#payout_held": "payout_held",
				"#updated_at":  "updated_at",
			},
			values: map[string]types.AttributeValue{
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
		})
	}
	return j, nil
}

func (r *JobDynamoRepository) ReleasePayout(ctx context.Context, id string, releasedAt time.Time) (entities.Job, error) {
	return r.update(ctx, id, updateSpec{
		expr: "SET #billing.#released_at = :released_at, #updated_at = :now",
		condition: "attribute_exists(#id) AND #status = :completed AND #dispute_flag = :false " +
			"AND #billing.#payout_held = :false AND attribute_not_exists(#billing.#released_at)",
		names: map[string]string{
			"#status":       "status",
			"#dispute_flag": "dispute_flag",
			"#billing":      "billing",
			"#payout_held":  "payout_held",
			"#released_at":  "payout_released_at",
			"#updated_at":   "updated_at",
		},
		values: map[string]types.AttributeValue{
			":completed":   &types.AttributeValueMemberS{Value: string(entities.JobStatusCompleted)},
			":false":       &types.AttributeValueMemberBOOL{Value: false},
			":released_at": &types.AttributeValueMemberS{Value: formatTime(releasedAt)},
		},
	})
}

type updateSpec struct {
	expr      string
	condition string
	names     map[string]string
	values    map[string]types.AttributeValue
}

func (r *JobDynamoRepository) update(ctx context.Context, id string, spec updateSpec) (entities.Job, error) {
	spec.values[":now"] = &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(spec.condition),
		UpdateExpression:          aws.String(spec.expr),
		ExpressionAttributeValues: spec.values,
		ExpressionAttributeNames:  mergeNames(spec.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrConditionFailed
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:          j.ID,
		CustomerID:  j.CustomerID,
		ProviderID:  j.ProviderID,
		Status:      string(j.Status),
		BillingMode: string(j.BillingMode),
		ScheduledAt: formatTime(j.ScheduledAt),
		CreatedAt:   formatTime(j.CreatedAt),
		UpdatedAt:   formatTime(j.UpdatedAt),
		DisputeFlag: j.DisputeFlag,
	}
	if j.HourlyRate > 0 {
		it.HourlyRate = floatToString(j.HourlyRate)
	}
	if j.Quote != nil {
		it.QuoteLabor = floatToString(j.Quote.Labor)
		it.QuoteMaterials = floatToString(j.Quote.Materials)
		it.QuoteTotal = floatToString(j.Quote.Total)
		it.QuoteSubmittedAt = formatTime(j.Quote.SubmittedAt)
		it.QuoteAccepted = j.Quote.Accepted
		it.QuoteAcceptedAt = formatTimePtr(j.Quote.AcceptedAt)
		it.QuoteLocked = j.Quote.Locked
	}
	if j.StartCode != nil {
		it.StartCodeHash = j.StartCode.Hash
		it.StartCodeIssuedAt = formatTime(j.StartCode.IssuedAt)
		it.StartCodeExpiresAt = epochNanos(j.StartCode.ExpiresAt)
		it.StartCodeConsumed = j.StartCode.Consumed
	}
	if j.EndCode != nil {
		it.EndCodeHash = j.EndCode.Hash
		it.EndCodeIssuedAt = formatTime(j.EndCode.IssuedAt)
		it.EndCodeExpiresAt = epochNanos(j.EndCode.ExpiresAt)
		it.EndCodeConsumed = j.EndCode.Consumed
	}
	it.JobStartedAt = formatTimePtr(j.JobStartedAt)
	it.JobCompletedAt = formatTimePtr(j.JobCompletedAt)
	if j.Billing != nil {
		b := toBillingItem(*j.Billing)
		it.Billing = &b
	}
	it.DisputeReason = j.DisputeReason
	it.PaymentID = j.PaymentID
	it.PaymentPaidAt = formatTimePtr(j.PaymentPaidAt)
	it.PaymentPayloadRaw = string(j.PaymentPayloadRaw)
	return it
}

func fromJobItem(it jobItem) entities.Job {
	j := entities.Job{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		ProviderID:  it.ProviderID,
		Status:      entities.JobStatus(it.Status),
		BillingMode: entities.BillingMode(it.BillingMode),
		HourlyRate:  parseFloat(it.HourlyRate),
		ScheduledAt: parseTime(it.ScheduledAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
		DisputeFlag: it.DisputeFlag,
	}
	if it.QuoteSubmittedAt != "" {
		j.Quote = &entities.Quote{
			Labor:       parseFloat(it.QuoteLabor),
			Materials:   parseFloat(it.QuoteMaterials),
			Total:       parseFloat(it.QuoteTotal),
			SubmittedAt: parseTime(it.QuoteSubmittedAt),
			Accepted:    it.QuoteAccepted,
			AcceptedAt:  parseTimePtr(it.QuoteAcceptedAt),
			Locked:      it.QuoteLocked,
		}
	}
	if it.StartCodeHash != "" {
		j.StartCode = &entities.AuthCode{
			Hash:      it.StartCodeHash,
			IssuedAt:  parseTime(it.StartCodeIssuedAt),
			ExpiresAt: timeFromEpoch(it.StartCodeExpiresAt),
			Consumed:  it.StartCodeConsumed,
		}
	}
	if it.EndCodeHash != "" {
		j.EndCode = &entities.AuthCode{
			Hash:      it.EndCodeHash,
			IssuedAt:  parseTime(it.EndCodeIssuedAt),
			ExpiresAt: timeFromEpoch(it.EndCodeExpiresAt),
			Consumed:  it.EndCodeConsumed,
		}
	}
	j.JobStartedAt = parseTimePtr(it.JobStartedAt)
	j.JobCompletedAt = parseTimePtr(it.JobCompletedAt)
	if it.Billing != nil {
		b := fromBillingItem(*it.Billing)
		j.Billing = &b
	}
	j.DisputeReason = it.DisputeReason
	j.PaymentID = it.PaymentID
	j.PaymentPaidAt = parseTimePtr(it.PaymentPaidAt)
	if it.PaymentPayloadRaw != "" {
		j.PaymentPayloadRaw = json.RawMessage(it.PaymentPayloadRaw)
	}
	return j
}

func toBillingItem(b entities.BillingRecord) billingItem {
	return billingItem{
		Mode:                  string(b.Mode),
		ActualDurationMinutes: b.ActualDurationMinutes,
		BilledMinutes:         b.BilledMinutes,
		FinalLaborCost:        floatToString(b.FinalLaborCost),
		FinalMaterialsCost:    floatToString(b.FinalMaterialsCost),
		Subtotal:              floatToString(b.Subtotal),
		PlatformFeeAmount:     floatToString(b.PlatformFeeAmount),
		FinalTotalCost:        floatToString(b.FinalTotalCost),
		ProviderPayoutAmount:  floatToString(b.ProviderPayoutAmount),
		PayoutHeld:            b.PayoutHeld,
		PayoutReleasedAt:      formatTimePtr(b.PayoutReleasedAt),
	}
}

func fromBillingItem(it billingItem) entities.BillingRecord {
	return entities.BillingRecord{
		Mode:                  entities.BillingMode(it.Mode),
		ActualDurationMinutes: it.ActualDurationMinutes,
		BilledMinutes:         it.BilledMinutes,
		FinalLaborCost:        parseFloat(it.FinalLaborCost),
		FinalMaterialsCost:    parseFloat(it.FinalMaterialsCost),
		Subtotal:              parseFloat(it.Subtotal),
		PlatformFeeAmount:     parseFloat(it.PlatformFeeAmount),
		FinalTotalCost:        parseFloat(it.FinalTotalCost),
		ProviderPayoutAmount:  parseFloat(it.ProviderPayoutAmount),
		PayoutHeld:            it.PayoutHeld,
		PayoutReleasedAt:      parseTimePtr(it.PayoutReleasedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func epochNanos(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixNano()
}

func timeFromEpoch(n int64) *time.Time {
	if n == 0 {
		return nil
	}
	t := time.Unix(0, n).UTC()
	return &t
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
