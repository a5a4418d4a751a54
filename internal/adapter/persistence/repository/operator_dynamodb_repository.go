package repository

import (
	"context"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOperatorsTableName = "operadores"
	operatorsEmailIndex       = "correo-index"
)

type operatorItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"correo"`
	PasswordHash string `dynamodbav:"password_hash"`
	Name         string `dynamodbav:"nombre"`
	LastName     string `dynamodbav:"apellido"`
	Phone        string `dynamodbav:"telefono,omitempty"`
	Active       bool   `dynamodbav:"activo"`
	CreatedAt    string `dynamodbav:"creado_en"`
	UpdatedAt    string `dynamodbav:"actualizado_en"`
}

// OperatorDynamoRepository reads operator accounts from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: correo-index (PK: correo)
//
// Accounts are provisioned out of band; this service only authenticates
// against them.

type OperatorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOperatorRepository = (*OperatorDynamoRepository)(nil)

func NewOperatorDynamoRepository(ddb *dynamodb.Client) *OperatorDynamoRepository {
	return &OperatorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPERATORS_TABLE", defaultOperatorsTableName),
	}
}

func (r *OperatorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Operator, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Operator{}, err
	}
	if len(out.Item) == 0 {
		return entities.Operator{}, nil
	}

	var it operatorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Operator{}, err
	}
	return fromOperatorItem(it), nil
}

func (r *OperatorDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Operator, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(operatorsEmailIndex),
		KeyConditionExpression: aws.String("correo = :correo"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":correo": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Operator{}, err
	}
	if len(out.Items) == 0 {
		return entities.Operator{}, nil
	}

	var it operatorItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Operator{}, err
	}
	return fromOperatorItem(it), nil
}

func fromOperatorItem(it operatorItem) entities.Operator {
	return entities.Operator{
		ID:           it.ID,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Name:         it.Name,
		LastName:     it.LastName,
		Phone:        it.Phone,
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
