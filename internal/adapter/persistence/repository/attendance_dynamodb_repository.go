package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAttendancesTableName = "attendances"
	attendancesClientIDIndex    = "client_id-index"

	// The counter row shares the table under id 0; real attendances start at 1.
	attendanceCounterID = 0
)

type attendanceServiceItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Price           string `dynamodbav:"price"`
	DurationMinutes int    `dynamodbav:"duration_minutes"`
}

type attendanceItem struct {
	ID              int                     `dynamodbav:"id"`
	ClientID        string                  `dynamodbav:"client_id"`
	ClientName      string                  `dynamodbav:"client_name"`
	ClientPhone     string                  `dynamodbav:"client_phone"`
	Services        []attendanceServiceItem `dynamodbav:"services"`
	Status          string                  `dynamodbav:"status"`
	PaymentStatus   string                  `dynamodbav:"payment_status"`
	PaymentMethod   string                  `dynamodbav:"payment_method"`
	AppointmentDate string                  `dynamodbav:"appointment_date"`
	Notes           string                  `dynamodbav:"notes,omitempty"`
	TotalPrice      string                  `dynamodbav:"total_price"`
	TotalMinutes    int                     `dynamodbav:"total_minutes"`
	CreatedAt       string                  `dynamodbav:"created_at"`
	UpdatedAt       string                  `dynamodbav:"updated_at"`
}

// AttendanceDynamoRepository persists Attendance entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: client_id-index (PK: client_id)
//
// Ids come from an atomic ADD on a counter row, so the board shows small
// sequential numbers. Dates are fixed-width UTC timestamp strings (see
// timestampLayout) so the date-range listing can compare them as strings.

type AttendanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAttendanceRepository = (*AttendanceDynamoRepository)(nil)

func NewAttendanceDynamoRepository(ddb *dynamodb.Client) *AttendanceDynamoRepository {
	return &AttendanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ATTENDANCES_TABLE", defaultAttendancesTableName),
	}
}

func (r *AttendanceDynamoRepository) NextID(ctx context.Context) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(attendanceCounterID)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("attendance counter: unexpected seq attribute %T", out.Attributes["seq"])
	}
	return strconv.Atoi(seq.Value)
}

func (r *AttendanceDynamoRepository) Create(ctx context.Context, a entities.Attendance) (entities.Attendance, error) {
	it := toAttendanceItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Attendance{}, err
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
		return entities.Attendance{}, err
	}
	return a, nil
}

func (r *AttendanceDynamoRepository) GetByID(ctx context.Context, id int) (entities.Attendance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Attendance{}, err
	}
	if len(out.Item) == 0 {
		return entities.Attendance{}, nil
	}

	var it attendanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Attendance{}, err
	}
	return fromAttendanceItem(it), nil
}

func (r *AttendanceDynamoRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Attendance, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#date >= :start AND #date < :end"),
		ExpressionAttributeNames: map[string]string{
			"#date": "appointment_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: timeToString(start)},
			":end":   &types.AttributeValueMemberS{Value: timeToString(end)},
		},
	}

	attendances := []entities.Attendance{}
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it attendanceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			attendances = append(attendances, fromAttendanceItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return attendances, nil
}

func (r *AttendanceDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Attendance, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(attendancesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	attendances := make([]entities.Attendance, 0, len(out.Items))
	for _, raw := range out.Items {
		var it attendanceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		attendances = append(attendances, fromAttendanceItem(it))
	}
	return attendances, nil
}

func (r *AttendanceDynamoRepository) UpdateStatus(ctx context.Context, id int, status entities.AttendanceStatus) (entities.Attendance, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AttendanceDynamoRepository) UpdatePayment(ctx context.Context, id int, status entities.PaymentStatus, method entities.PaymentMethod) (entities.Attendance, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :payment_status, #payment_method = :payment_method, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_status": &types.AttributeValueMemberS{Value: string(status)},
			":payment_method": &types.AttributeValueMemberS{Value: string(method)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#payment_method": "payment_method",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AttendanceDynamoRepository) update(
	ctx context.Context,
	id int,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Attendance, error) {
	now := timeToString(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Attendance{}, nil
		}
		return entities.Attendance{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Attendance{}, nil
	}
	var it attendanceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Attendance{}, err
	}
	return fromAttendanceItem(it), nil
}

func toAttendanceItem(a entities.Attendance) attendanceItem {
	services := make([]attendanceServiceItem, 0, len(a.Services))
	for _, s := range a.Services {
		services = append(services, attendanceServiceItem{
			ID:              s.ID,
			Name:            s.Name,
			Price:           floatToString(s.Price),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return attendanceItem{
		ID:              a.ID,
		ClientID:        a.Client.ID,
		ClientName:      a.Client.Name,
		ClientPhone:     a.Client.Phone,
		Services:        services,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		PaymentMethod:   string(a.PaymentMethod),
		AppointmentDate: timeToString(a.AppointmentDate),
		Notes:           a.Notes,
		TotalPrice:      floatToString(a.TotalPrice),
		TotalMinutes:    a.TotalMinutes,
		CreatedAt:       timeToString(a.CreatedAt),
		UpdatedAt:       timeToString(a.UpdatedAt),
	}
}

func fromAttendanceItem(it attendanceItem) entities.Attendance {
	services := make([]entities.AttendanceService, 0, len(it.Services))
	for _, s := range it.Services {
		price, _ := strconv.ParseFloat(s.Price, 64)
		services = append(services, entities.AttendanceService{
			ID:              s.ID,
			Name:            s.Name,
			Price:           price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	appointmentDate, _ := time.Parse(time.RFC3339Nano, it.AppointmentDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalPrice, _ := strconv.ParseFloat(it.TotalPrice, 64)
	return entities.Attendance{
		ID: it.ID,
		Client: entities.AttendanceClient{
			ID:    it.ClientID,
			Name:  it.ClientName,
			Phone: it.ClientPhone,
		},
		Services:        services,
		Status:          entities.AttendanceStatus(it.Status),
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		AppointmentDate: appointmentDate,
		Notes:           it.Notes,
		TotalPrice:      totalPrice,
		TotalMinutes:    it.TotalMinutes,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
