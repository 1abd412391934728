package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectsClientIDIndex    = "client_id-index"
)

// projectItem stores the aggregate as one row: a few scalar attributes for
// keys, the GSI and conditional writes, plus the full aggregate as a JSON
// document. Quotes, amendments and snapshots always travel with their
// project, so a single conditional write covers the whole consistency unit.
type projectItem struct {
	ID            string `dynamodbav:"id"`
	ProjectNumber string `dynamodbav:"project_number"`
	ClientID      string `dynamodbav:"client_id,omitempty"`
	Status        string `dynamodbav:"status"`
	Revision      int64  `dynamodbav:"revision"`
	Document      string `dynamodbav:"document"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it)
}

// Update replaces the row conditionally on the revision the caller read. The
// stored revision is bumped in the same write, so two concurrent writers can
// never both succeed. A conditional failure surfaces as a zero value with a
// nil error, matching the repository conventions.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	expected := p.Revision
	p.Revision++

	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #revision = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#revision": "revision",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	var projects []entities.Project
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		appended, err := appendProjects(projects, out.Items)
		if err != nil {
			return nil, err
		}
		projects = appended
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}
	return appendProjects(nil, out.Items)
}

func appendProjects(dst []entities.Project, raws []map[string]types.AttributeValue) ([]entities.Project, error) {
	for _, raw := range raws {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		p, err := fromProjectItem(it)
		if err != nil {
			return nil, err
		}
		dst = append(dst, p)
	}
	return dst, nil
}

func toProjectItem(p entities.Project) (projectItem, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return projectItem{}, err
	}
	return projectItem{
		ID:            p.ID,
		ProjectNumber: p.ProjectNumber,
		ClientID:      p.ClientID,
		Status:        string(p.Status),
		Revision:      p.Revision,
		Document:      string(doc),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromProjectItem(it projectItem) (entities.Project, error) {
	var p entities.Project
	if err := json.Unmarshal([]byte(it.Document), &p); err != nil {
		return entities.Project{}, err
	}
	// The scalar columns are authoritative for the conditional-write fields.
	p.Revision = it.Revision
	return p, nil
}
