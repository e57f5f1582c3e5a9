package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/singletable"
)

const (
	DefaultTableName = "BankManager"

	attrPK      = "pk"
	attrSK      = "sk"
	attrBalance = "balance"
)

// number stores a decimal as a DynamoDB N attribute without going through float64.
type number struct {
	decimal.Decimal
}

func (n number) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: n.Decimal.String()}, nil
}

func (n *number) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	v, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Errorf("expected number attribute, got %T", av)
	}
	d, err := decimal.NewFromString(v.Value)
	if err != nil {
		return err
	}
	n.Decimal = d
	return nil
}

type record struct {
	PK       string  `dynamodbav:"pk"`
	SK       string  `dynamodbav:"sk"`
	Balance  *number `dynamodbav:"balance,omitempty"`
	Amount   *number `dynamodbav:"amount,omitempty"`
	Type     string  `dynamodbav:"type,omitempty"`
	Payer    string  `dynamodbav:"payer,omitempty"`
	Receiver string  `dynamodbav:"receiver,omitempty"`
}

func toRecord(item singletable.Item) record {
	rec := record{
		PK:       item.PK,
		SK:       item.SK,
		Type:     item.Type,
		Payer:    item.Payer,
		Receiver: item.Receiver,
	}
	if item.Balance != nil {
		rec.Balance = &number{*item.Balance}
	}
	if item.Amount != nil {
		rec.Amount = &number{*item.Amount}
	}
	return rec
}

func (r record) toItem() singletable.Item {
	item := singletable.Item{
		PK:       r.PK,
		SK:       r.SK,
		Type:     r.Type,
		Payer:    r.Payer,
		Receiver: r.Receiver,
	}
	if r.Balance != nil {
		item.Balance = &r.Balance.Decimal
	}
	if r.Amount != nil {
		item.Amount = &r.Amount.Decimal
	}
	return item
}

// Table implements singletable.Table on a DynamoDB table keyed by (pk, sk).
type Table struct {
	api  API
	name string
}

func NewTable(api API, name string) *Table {
	return &Table{api: api, name: name}
}

func key(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: pk},
		attrSK: &types.AttributeValueMemberS{Value: sk},
	}
}

func (t *Table) GetItem(ctx context.Context, pk, sk string) (*singletable.Item, error) {
	out, err := t.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       key(pk, sk),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	item := rec.toItem()
	return &item, nil
}

func (t *Table) QueryPrefix(ctx context.Context, pk, skPrefix string) ([]singletable.Item, error) {
	keyCond := expression.Key(attrPK).Equal(expression.Value(pk)).
		And(expression.Key(attrSK).BeginsWith(skPrefix))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build key condition: %w", err)
	}

	paginator := dynamodb.NewQueryPaginator(t.api, &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	var items []singletable.Item
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var recs []record
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		for _, rec := range recs {
			items = append(items, rec.toItem())
		}
	}
	return items, nil
}

func (t *Table) PutItem(ctx context.Context, item singletable.Item) error {
	av, err := attributevalue.MarshalMap(toRecord(item))
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})
	return err
}

func (t *Table) UpdateBalance(ctx context.Context, pk, sk string, balance decimal.Decimal) error {
	update := expression.Set(expression.Name(attrBalance), expression.Value(number{balance}))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	_, err = t.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       key(pk, sk),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return err
}
