package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOperatorCodesTableName = "operator_codes"
	operatorCodesCodeIndex        = "code-index"

	// Sort key reserved for the per-operator meta item. Code ids start at 1.
	metaItemID = 0
)

type operatorCodeItem struct {
	OperatorID string `dynamodbav:"operator_id"`
	ID         int64  `dynamodbav:"id"`
	Code       string `dynamodbav:"code"`
	CreatedAt  string `dynamodbav:"created_at"`
	ExpiresAt  string `dynamodbav:"expires_at"`
	UsedAt     string `dynamodbav:"used_at,omitempty"`
	SaleID     string `dynamodbav:"sale_id,omitempty"`
}

// OperatorCodeDynamoRepository persists OperatorCode entities in DynamoDB.
//
// Table requirements:
//   - PK: operator_id (string), SK: id (number)
//   - GSI: code-index (PK: code)
//
// Item id 0 is the operator's meta item: last_id (ADD-incremented
// sequence) and active_code_id. active_code_id is the uniqueness lock
// behind "at most one unused code per operator": it is claimed with a
// conditional write when an unused code is inserted and released when
// that code is stamped used. The conditional claim is the final arbiter;
// everything the use case does before it is only a best-effort pre-check.

type OperatorCodeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOperatorCodeRepository = (*OperatorCodeDynamoRepository)(nil)

func NewOperatorCodeDynamoRepository(ddb *dynamodb.Client) *OperatorCodeDynamoRepository {
	return &OperatorCodeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPERATOR_CODES_TABLE", defaultOperatorCodesTableName),
	}
}

func (r *OperatorCodeDynamoRepository) NextID(ctx context.Context, operatorID string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              metaKey(operatorID),
		UpdateExpression: aws.String("ADD #last_id :one"),
		ExpressionAttributeNames: map[string]string{
			"#last_id": "last_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["last_id"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("operator_codes meta item returned no last_id")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *OperatorCodeDynamoRepository) InsertUnused(ctx context.Context, code entities.OperatorCode) error {
	av, err := attributevalue.MarshalMap(toOperatorCodeItem(code))
	if err != nil {
		return err
	}

	codeID := strconv.FormatInt(code.ID, 10)
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 metaKey(code.OperatorID),
					UpdateExpression:    aws.String("SET #active = :code_id"),
					ConditionExpression: aws.String("attribute_not_exists(#active)"),
					ExpressionAttributeNames: map[string]string{
						"#active": "active_code_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":code_id": &types.AttributeValueMemberN{Value: codeID},
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return interfaces.ErrActiveCodeExists
		}
		return err
	}
	return nil
}

func (r *OperatorCodeDynamoRepository) GetActive(ctx context.Context, operatorID string, now time.Time) (entities.OperatorCode, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#operator_id = :op AND #id > :meta"),
		FilterExpression:       aws.String("attribute_not_exists(#used_at) AND #expires_at > :now"),
		ExpressionAttributeNames: map[string]string{
			"#operator_id": "operator_id",
			"#id":          "id",
			"#used_at":     "used_at",
			"#expires_at":  "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":op":   &types.AttributeValueMemberS{Value: operatorID},
			":meta": &types.AttributeValueMemberN{Value: strconv.Itoa(metaItemID)},
			":now":  &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		ScanIndexForward: aws.Bool(false),
	}

	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return entities.OperatorCode{}, err
		}
		if len(out.Items) > 0 {
			var it operatorCodeItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.OperatorCode{}, err
			}
			return fromOperatorCodeItem(it), nil
		}
		if out.LastEvaluatedKey == nil {
			return entities.OperatorCode{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *OperatorCodeDynamoRepository) GetByID(ctx context.Context, operatorID string, id int64) (entities.OperatorCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            codeKey(operatorID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OperatorCode{}, err
	}
	if len(out.Item) == 0 {
		return entities.OperatorCode{}, nil
	}

	var it operatorCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OperatorCode{}, err
	}
	return fromOperatorCodeItem(it), nil
}

func (r *OperatorCodeDynamoRepository) ListByOperator(ctx context.Context, operatorID string) ([]entities.OperatorCode, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#operator_id = :op AND #id > :meta"),
		ExpressionAttributeNames: map[string]string{
			"#operator_id": "operator_id",
			"#id":          "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":op":   &types.AttributeValueMemberS{Value: operatorID},
			":meta": &types.AttributeValueMemberN{Value: strconv.Itoa(metaItemID)},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var codes []entities.OperatorCode
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it operatorCodeItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			codes = append(codes, fromOperatorCodeItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return codes, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *OperatorCodeDynamoRepository) FindValidByCode(ctx context.Context, code string, now time.Time) (entities.OperatorCode, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(operatorCodesCodeIndex),
		KeyConditionExpression: aws.String("#code = :code"),
		FilterExpression:       aws.String("attribute_not_exists(#used_at) AND #expires_at > :now"),
		ExpressionAttributeNames: map[string]string{
			"#code":       "code",
			"#used_at":    "used_at",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
			":now":  &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	}

	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return entities.OperatorCode{}, err
		}
		if len(out.Items) > 0 {
			var it operatorCodeItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.OperatorCode{}, err
			}
			return fromOperatorCodeItem(it), nil
		}
		if out.LastEvaluatedKey == nil {
			return entities.OperatorCode{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *OperatorCodeDynamoRepository) MarkAllUnusedUsed(ctx context.Context, operatorID string, now time.Time) ([]entities.OperatorCode, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#operator_id = :op AND #id > :meta"),
		FilterExpression:       aws.String("attribute_not_exists(#used_at)"),
		ExpressionAttributeNames: map[string]string{
			"#operator_id": "operator_id",
			"#id":          "id",
			"#used_at":     "used_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":op":   &types.AttributeValueMemberS{Value: operatorID},
			":meta": &types.AttributeValueMemberN{Value: strconv.Itoa(metaItemID)},
		},
	}

	var invalidated []entities.OperatorCode
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it operatorCodeItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			if err := r.stampUsed(ctx, operatorID, it.ID, now); err != nil {
				return nil, err
			}
			// Release per stamped code, never blanket: a concurrent
			// generator may have claimed the slot for a code this query
			// did not see, and that claim must survive.
			if err := r.releaseSlot(ctx, operatorID, it.ID); err != nil {
				return nil, err
			}
			invalidated = append(invalidated, fromOperatorCodeItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return invalidated, nil
}

func (r *OperatorCodeDynamoRepository) MarkUsed(ctx context.Context, operatorID string, id int64, now time.Time) error {
	if err := r.stampUsed(ctx, operatorID, id, now); err != nil {
		return err
	}
	return r.releaseSlot(ctx, operatorID, id)
}

// stampUsed sets used_at on one code. A failed condition means the code
// was already used; that is not an error (idempotence).
func (r *OperatorCodeDynamoRepository) stampUsed(ctx context.Context, operatorID string, id int64, now time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 codeKey(operatorID, id),
		UpdateExpression:    aws.String("SET #used_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#used_at)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#used_at": "used_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

// ReleaseStaleSlot frees the active-slot lock when the code holding it
// is already used or missing, which happens when a writer crashed
// between stamping a code and releasing its slot. A lock held by a live
// unused code is left alone. Returns whether a lock was released.
func (r *OperatorCodeDynamoRepository) ReleaseStaleSlot(ctx context.Context, operatorID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            metaKey(operatorID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var meta struct {
		ActiveCodeID int64 `dynamodbav:"active_code_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &meta); err != nil {
		return false, err
	}
	if meta.ActiveCodeID == 0 {
		return false, nil
	}

	holder, err := r.GetByID(ctx, operatorID, meta.ActiveCodeID)
	if err != nil {
		return false, err
	}
	if holder.ID != 0 && holder.UsedAt == nil {
		return false, nil
	}

	if err := r.releaseSlot(ctx, operatorID, meta.ActiveCodeID); err != nil {
		return false, err
	}
	return true, nil
}

// releaseSlot clears active_code_id, but only while the given code still
// holds it; a failed condition means someone else claimed the slot in
// the meantime and their claim stands.
func (r *OperatorCodeDynamoRepository) releaseSlot(ctx context.Context, operatorID string, id int64) error {
	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 metaKey(operatorID),
		UpdateExpression:    aws.String("REMOVE #active"),
		ConditionExpression: aws.String("#active = :code_id"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active_code_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	}

	_, err := r.ddb.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toOperatorCodeItem(c entities.OperatorCode) operatorCodeItem {
	it := operatorCodeItem{
		OperatorID: c.OperatorID,
		ID:         c.ID,
		Code:       c.Code,
		CreatedAt:  formatTime(c.CreatedAt),
		ExpiresAt:  formatTime(c.ExpiresAt),
	}
	if c.UsedAt != nil {
		it.UsedAt = formatTime(*c.UsedAt)
	}
	if c.SaleID != nil {
		it.SaleID = *c.SaleID
	}
	return it
}

func fromOperatorCodeItem(it operatorCodeItem) entities.OperatorCode {
	c := entities.OperatorCode{
		ID:         it.ID,
		OperatorID: it.OperatorID,
		Code:       it.Code,
		CreatedAt:  parseTime(it.CreatedAt),
		ExpiresAt:  parseTime(it.ExpiresAt),
	}
	if it.UsedAt != "" {
		t := parseTime(it.UsedAt)
		c.UsedAt = &t
	}
	if it.SaleID != "" {
		s := it.SaleID
		c.SaleID = &s
	}
	return c
}

func metaKey(operatorID string) map[string]types.AttributeValue {
	return codeKey(operatorID, metaItemID)
}

func codeKey(operatorID string, id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"operator_id": &types.AttributeValueMemberS{Value: operatorID},
		"id":          &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

// isConditionalCancellation reports whether a TransactWriteItems call was
// cancelled by a failed condition (as opposed to throttling or validation).
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
