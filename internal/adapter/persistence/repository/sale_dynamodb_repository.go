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
	"github.com/google/uuid"
)

const (
	defaultSalesTableName            = "ventas"
	defaultClientsTableName          = "clientes"
	defaultAcceptancesTableName      = "aceptaciones"
	defaultMarketingAnswersTableName = "marketing_respuestas"

	salesOperatorIDIndex = "operator_id-index"
)

type saleItem struct {
	ID                 string  `dynamodbav:"id"`
	OperatorID         string  `dynamodbav:"operator_id"`
	ClientID           string  `dynamodbav:"cliente_id"`
	ServiceTimeMinutes int     `dynamodbav:"tiempo_servicio_min"`
	TotalValue         float64 `dynamodbav:"valor_total"`
	GenerateInvoice    bool    `dynamodbav:"generar_factura"`
	InvoiceNumber      string  `dynamodbav:"numero_factura,omitempty"`
	InvoiceStatus      string  `dynamodbav:"estado_factura"`
	CreatedAt          string  `dynamodbav:"creada_en"`
	UpdatedAt          string  `dynamodbav:"actualizada_en"`
}

type clientItem struct {
	ID             string `dynamodbav:"id"`
	DocumentType   string `dynamodbav:"tipo_documento"`
	DocumentNumber string `dynamodbav:"numero_documento"`
	Name           string `dynamodbav:"nombre"`
	LastName       string `dynamodbav:"apellido"`
	Email          string `dynamodbav:"correo"`
	Address        string `dynamodbav:"direccion"`
	Phone          string `dynamodbav:"celular"`
	CreatedAt      string `dynamodbav:"creado_en"`
}

type acceptanceItem struct {
	ID             string `dynamodbav:"id"`
	SaleID         string `dynamodbav:"venta_id"`
	AcceptsTerms   bool   `dynamodbav:"acepta_terminos"`
	AcceptsPrivacy bool   `dynamodbav:"acepta_privacidad"`
	TermsVersion   string `dynamodbav:"version_terminos"`
	PrivacyVersion string `dynamodbav:"version_privacidad"`
	IP             string `dynamodbav:"ip,omitempty"`
	UserAgent      string `dynamodbav:"user_agent,omitempty"`
	CreatedAt      string `dynamodbav:"creado_en"`
}

type marketingAnswerItem struct {
	ID        string `dynamodbav:"id"`
	SaleID    string `dynamodbav:"venta_id"`
	Question  string `dynamodbav:"pregunta"`
	Answer    string `dynamodbav:"respuesta"`
	CreatedAt string `dynamodbav:"creado_en"`
}

// SaleDynamoRepository persists the sale aggregate in DynamoDB.
//
// Table requirements:
//   - ventas: PK id (string), GSI operator_id-index (PK: operator_id)
//   - clientes: PK id (string)
//   - aceptaciones: PK id (string)
//   - marketing_respuestas: PK id (string)
//
// CreateCompleteSale writes the whole aggregate and consumes the
// operator code in a single TransactWriteItems call, so a sale can never
// exist without its client and acceptance, and a code can never pay for
// two sales.

type SaleDynamoRepository struct {
	ddb                   *dynamodb.Client
	salesTable            string
	clientsTable          string
	acceptancesTable      string
	marketingAnswersTable string
	codesTable            string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:                   ddb,
		salesTable:            getenvDefault("SALES_TABLE", defaultSalesTableName),
		clientsTable:          getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		acceptancesTable:      getenvDefault("ACCEPTANCES_TABLE", defaultAcceptancesTableName),
		marketingAnswersTable: getenvDefault("MARKETING_ANSWERS_TABLE", defaultMarketingAnswersTableName),
		codesTable:            getenvDefault("OPERATOR_CODES_TABLE", defaultOperatorCodesTableName),
	}
}

func (r *SaleDynamoRepository) CreateCompleteSale(ctx context.Context, cmd interfaces.CreateSaleCommand) (interfaces.CreateSaleResult, error) {
	now := time.Now().UTC()
	nowStr := formatTime(now)

	result := interfaces.CreateSaleResult{
		SaleID:       uuid.NewString(),
		ClientID:     uuid.NewString(),
		OperatorID:   cmd.CodeOperatorID,
		AcceptanceID: uuid.NewString(),
	}

	clientAV, err := attributevalue.MarshalMap(clientItem{
		ID:             result.ClientID,
		DocumentType:   cmd.DocumentType,
		DocumentNumber: cmd.DocumentNumber,
		Name:           cmd.Name,
		LastName:       cmd.LastName,
		Email:          cmd.Email,
		Address:        cmd.Address,
		Phone:          cmd.Phone,
		CreatedAt:      nowStr,
	})
	if err != nil {
		return interfaces.CreateSaleResult{}, err
	}

	saleAV, err := attributevalue.MarshalMap(saleItem{
		ID:                 result.SaleID,
		OperatorID:         cmd.CodeOperatorID,
		ClientID:           result.ClientID,
		ServiceTimeMinutes: cmd.ServiceTimeMinutes,
		TotalValue:         cmd.TotalValue,
		GenerateInvoice:    cmd.GenerateInvoice,
		InvoiceStatus:      string(entities.InvoiceStatusPendiente),
		CreatedAt:          nowStr,
		UpdatedAt:          nowStr,
	})
	if err != nil {
		return interfaces.CreateSaleResult{}, err
	}

	acceptanceAV, err := attributevalue.MarshalMap(acceptanceItem{
		ID:             result.AcceptanceID,
		SaleID:         result.SaleID,
		AcceptsTerms:   cmd.AcceptsTerms,
		AcceptsPrivacy: cmd.AcceptsPrivacy,
		TermsVersion:   cmd.TermsVersion,
		PrivacyVersion: cmd.PrivacyVersion,
		IP:             cmd.IP,
		UserAgent:      cmd.UserAgent,
		CreatedAt:      nowStr,
	})
	if err != nil {
		return interfaces.CreateSaleResult{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.clientsTable),
				Item:                     clientAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
		{
			Put: &types.Put{
				TableName:                aws.String(r.salesTable),
				Item:                     saleAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(r.acceptancesTable),
				Item:      acceptanceAV,
			},
		},
	}

	for question, answer := range cmd.MarketingAnswers {
		answerAV, err := attributevalue.MarshalMap(marketingAnswerItem{
			ID:        uuid.NewString(),
			SaleID:    result.SaleID,
			Question:  question,
			Answer:    answer,
			CreatedAt: nowStr,
		})
		if err != nil {
			return interfaces.CreateSaleResult{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.marketingAnswersTable),
				Item:      answerAV,
			},
		})
	}

	// Consuming the code inside the transaction closes the window between
	// front-door validation and commit: a concurrently consumed code fails
	// the condition and the whole aggregate rolls back.
	items = append(items,
		types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.codesTable),
				Key:                 codeKey(cmd.CodeOperatorID, cmd.CodeID),
				UpdateExpression:    aws.String("SET #used_at = :now, #sale_id = :sale_id"),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#used_at)"),
				ExpressionAttributeNames: map[string]string{
					"#id":      "id",
					"#used_at": "used_at",
					"#sale_id": "sale_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":now":     &types.AttributeValueMemberS{Value: nowStr},
					":sale_id": &types.AttributeValueMemberS{Value: result.SaleID},
				},
			},
		},
		types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.codesTable),
				Key:                 metaKey(cmd.CodeOperatorID),
				UpdateExpression:    aws.String("REMOVE #active"),
				ConditionExpression: aws.String("#active = :code_id"),
				ExpressionAttributeNames: map[string]string{
					"#active": "active_code_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":code_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(cmd.CodeID, 10)},
				},
			},
		},
	)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCancellation(err) {
			return interfaces.CreateSaleResult{}, interfaces.ErrCodeAlreadyConsumed
		}
		return interfaces.CreateSaleResult{}, err
	}
	return result, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.SaleWithClient, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.salesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SaleWithClient{}, err
	}
	if len(out.Item) == 0 {
		return entities.SaleWithClient{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SaleWithClient{}, err
	}

	client, err := r.getClient(ctx, it.ClientID)
	if err != nil {
		return entities.SaleWithClient{}, err
	}
	return entities.SaleWithClient{Sale: fromSaleItem(it), Client: client}, nil
}

func (r *SaleDynamoRepository) ListByOperator(ctx context.Context, operatorID string) ([]entities.SaleWithClient, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.salesTable),
		IndexName:              aws.String(salesOperatorIDIndex),
		KeyConditionExpression: aws.String("operator_id = :op"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":op": &types.AttributeValueMemberS{Value: operatorID},
		},
	}

	var sales []entities.SaleWithClient
	clients := map[string]entities.Client{}
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it saleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			client, ok := clients[it.ClientID]
			if !ok {
				client, err = r.getClient(ctx, it.ClientID)
				if err != nil {
					return nil, err
				}
				clients[it.ClientID] = client
			}
			sales = append(sales, entities.SaleWithClient{Sale: fromSaleItem(it), Client: client})
		}
		if out.LastEvaluatedKey == nil {
			return sales, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *SaleDynamoRepository) UpdateInvoice(ctx context.Context, saleID, invoiceNumber string, status entities.InvoiceStatus) (entities.Sale, error) {
	expr := "SET #estado = :estado, #updated = :now"
	names := map[string]string{
		"#id":      "id",
		"#estado":  "estado_factura",
		"#updated": "actualizada_en",
	}
	values := map[string]types.AttributeValue{
		":estado": &types.AttributeValueMemberS{Value: string(status)},
		":now":    &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
	}
	if invoiceNumber != "" {
		expr += ", #numero = :numero"
		names["#numero"] = "numero_factura"
		values[":numero"] = &types.AttributeValueMemberS{Value: invoiceNumber}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.salesTable),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: saleID}},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) getClient(ctx context.Context, clientID string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.clientsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return entities.Client{
		ID:             it.ID,
		DocumentType:   it.DocumentType,
		DocumentNumber: it.DocumentNumber,
		Name:           it.Name,
		LastName:       it.LastName,
		Email:          it.Email,
		Address:        it.Address,
		Phone:          it.Phone,
		CreatedAt:      parseTime(it.CreatedAt),
	}, nil
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:                 it.ID,
		OperatorID:         it.OperatorID,
		ClientID:           it.ClientID,
		ServiceTimeMinutes: it.ServiceTimeMinutes,
		TotalValue:         it.TotalValue,
		GenerateInvoice:    it.GenerateInvoice,
		InvoiceNumber:      it.InvoiceNumber,
		InvoiceStatus:      entities.InvoiceStatus(it.InvoiceStatus),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
