package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

var (
	_ registration.Repository = &DB{}
	_ registration.Lister     = &DB{}
	_ registration.Getter     = &DB{}
)

type registrationDynamo struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string

	RegistrationID   string
	RegisteredAt     time.Time
	Timestamp        string
	FullName         string
	Age              string
	Gender           string
	Contact          string
	Email            string
	Organization     string
	Island           string
	SportID          string
	SportName        string
	SportType        string
	TeamMembersCount int
	CoachName        string
	CoachPosition    string
	Status           string
	PaymentStatus    string
	Notes            string
}

const (
	registrationEntityName = "REGISTRATION"

	// fixed width so GSI1SK sorts chronologically
	sortableTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

func registrationPK(id string) string {
	return fmt.Sprintf("%s#%s", registrationEntityName, id)
}

func registrationSK(id string) string {
	return registrationPK(id)
}

func registrationGSI1SK(registeredAt time.Time, id string) string {
	return fmt.Sprintf("%s#%s", registeredAt.UTC().Format(sortableTimeLayout), id)
}

func registrationToDynamo(rec registration.Record) registrationDynamo {
	return registrationDynamo{
		PK:               registrationPK(rec.RegistrationID),
		SK:               registrationSK(rec.RegistrationID),
		GSI1PK:           registrationEntityName,
		GSI1SK:           registrationGSI1SK(rec.RegisteredAt, rec.RegistrationID),
		RegistrationID:   rec.RegistrationID,
		RegisteredAt:     rec.RegisteredAt,
		Timestamp:        rec.Timestamp(),
		FullName:         rec.FullName,
		Age:              rec.Age,
		Gender:           rec.Gender,
		Contact:          rec.Contact,
		Email:            rec.Email,
		Organization:     rec.Organization,
		Island:           rec.Island,
		SportID:          rec.SportID,
		SportName:        rec.SportName,
		SportType:        rec.SportType,
		TeamMembersCount: rec.TeamMembersCount,
		CoachName:        rec.CoachName,
		CoachPosition:    rec.CoachPosition,
		Status:           rec.Status,
		PaymentStatus:    rec.PaymentStatus,
		Notes:            rec.Notes,
	}
}

func dynamoToRegistration(dynReg registrationDynamo) registration.Record {
	return registration.Record{
		RegistrationID:   dynReg.RegistrationID,
		RegisteredAt:     dynReg.RegisteredAt,
		FullName:         dynReg.FullName,
		Age:              dynReg.Age,
		Gender:           dynReg.Gender,
		Contact:          dynReg.Contact,
		Email:            dynReg.Email,
		Organization:     dynReg.Organization,
		Island:           dynReg.Island,
		SportID:          dynReg.SportID,
		SportName:        dynReg.SportName,
		SportType:        dynReg.SportType,
		TeamMembersCount: dynReg.TeamMembersCount,
		CoachName:        dynReg.CoachName,
		CoachPosition:    dynReg.CoachPosition,
		Status:           dynReg.Status,
		PaymentStatus:    dynReg.PaymentStatus,
		Notes:            dynReg.Notes,
	}
}

func (d *DB) AppendRegistration(ctx context.Context, rec registration.Record) error {
	item, err := attributevalue.MarshalMap(registrationToDynamo(rec))
	if err != nil {
		return fmt.Errorf("failed to translate registration to dynamo model: %w", err)
	}

	expr := exprMustBuild(expression.NewBuilder().WithCondition(newEntityConditional()))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return registration.NewAlreadyExistsError(rec.RegistrationID)
		}
		return fmt.Errorf("failed to put registration %s: %w", rec.RegistrationID, err)
	}

	return nil
}

func (d *DB) GetRegistration(ctx context.Context, id string) (registration.Record, error) {
	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: registrationPK(id)},
			"SK": &types.AttributeValueMemberS{Value: registrationSK(id)},
		},
	})
	if err != nil {
		return registration.Record{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration %q", id), err)
	}

	if len(resp.Item) == 0 {
		return registration.Record{}, registration.NewNotFoundError(id)
	}

	var dynReg registrationDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &dynReg)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal registration from dynamo: %s", err))
	}

	return dynamoToRegistration(dynReg), nil
}

// ListRegistrations pages through every registration in the order they were made.
func (d *DB) ListRegistrations(ctx context.Context, cursor *string, limit int32) (registration.ListResponse, error) {
	limit = registration.ClampListLimit(limit)

	keyCond := expression.Key("GSI1PK").Equal(expression.Value(registrationEntityName))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build dynamo key expression: %s", err))
	}

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		startKey, err = cursorToLastEval(*cursor)
		if err != nil {
			return registration.ListResponse{}, registration.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(d.tableName),
		IndexName:                 aws.String(gsi1),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		// one extra item tells us whether another page exists
		Limit:             aws.Int32(limit + 1),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		return registration.ListResponse{}, registration.NewFailedToFetchError("Failed to fetch registrations from dynamo", err)
	}

	var dynamoItems []registrationDynamo
	err = attributevalue.UnmarshalListOfMaps(result.Items, &dynamoItems)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal dynamo registrations: %s", err))
	}

	hasNextPage := len(dynamoItems) > int(limit)

	var newCursor *string
	if hasNextPage && len(result.LastEvaluatedKey) > 0 {
		// LastEvaluatedKey points at the extra item, so rebuild it from the last one returned
		lastItemGivenToUser := result.Items[len(result.Items)-2]
		c, err := lastEvalKeyToCursor(keyOf(result.LastEvaluatedKey, lastItemGivenToUser))
		if err != nil {
			panic(fmt.Sprintf("failed to make cursor from lastEvalKey: %s", err))
		}
		newCursor = &c
	}

	if hasNextPage {
		dynamoItems = dynamoItems[:limit]
	}

	records := make([]registration.Record, 0, len(dynamoItems))
	for _, item := range dynamoItems {
		records = append(records, dynamoToRegistration(item))
	}

	return registration.ListResponse{
		Records:     records,
		Cursor:      newCursor,
		HasNextPage: hasNextPage,
	}, nil
}
