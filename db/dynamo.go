package db

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/tonality/scale"
	"github.com/pkg/errors"
)

// BatchGetItem accepts at most this many keys per call.
const maxBatchKeys = 100

// DynamoStore keeps one item per scale: the name under PK and the scale in
// its text form under Scale.
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoStore(cfg Config) (*DynamoStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a DynamoDB session")
	}
	return NewDynamoStoreWithClient(dynamodb.New(sess), cfg.Table), nil
}

func NewDynamoStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func key(name string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(name)},
	}
}

func decode(item map[string]*dynamodb.AttributeValue) (string, scale.Scale, error) {
	pk, ok := item["PK"]
	if !ok || pk.S == nil {
		return "", scale.Scale{}, errors.New("item without PK")
	}
	text, ok := item["Scale"]
	if !ok || text.S == nil {
		return "", scale.Scale{}, errors.Errorf("item %s without Scale", *pk.S)
	}
	s, err := scale.Parse(*text.S)
	if err != nil {
		return "", scale.Scale{}, errors.Wrapf(err, "item %s", *pk.S)
	}
	return *pk.S, s, nil
}

func (d *DynamoStore) Put(ctx context.Context, name string, s scale.Scale) error {
	item := key(name)
	item["Scale"] = &dynamodb.AttributeValue{S: aws.String(s.String())}
	_, err := d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	return errors.Wrapf(err, "storing scale %s", name)
}

func (d *DynamoStore) Get(ctx context.Context, name string) (scale.Scale, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       key(name),
	})
	if err != nil {
		return scale.Scale{}, errors.Wrapf(err, "loading scale %s", name)
	}
	if len(out.Item) == 0 {
		return scale.Scale{}, ErrNotFound
	}
	_, s, err := decode(out.Item)
	return s, err
}

func (d *DynamoStore) GetMany(ctx context.Context, names []string) (map[string]scale.Scale, error) {
	res := make(map[string]scale.Scale)
	for start := 0; start < len(names); start += maxBatchKeys {
		end := start + maxBatchKeys
		if end > len(names) {
			end = len(names)
		}
		var keys []map[string]*dynamodb.AttributeValue
		for _, name := range names[start:end] {
			keys = append(keys, key(name))
		}
		request := map[string]*dynamodb.KeysAndAttributes{
			d.table: {Keys: keys},
		}
		// unprocessed keys come back when the table is throttled
		for len(request) > 0 {
			out, err := d.client.BatchGetItemWithContext(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, errors.Wrap(err, "loading scales")
			}
			for _, item := range out.Responses[d.table] {
				name, s, err := decode(item)
				if err != nil {
					return nil, err
				}
				res[name] = s
			}
			request = out.UnprocessedKeys
		}
	}
	return res, nil
}

func (d *DynamoStore) List(ctx context.Context) ([]string, error) {
	var names []string
	input := &dynamodb.ScanInput{
		TableName:            aws.String(d.table),
		ProjectionExpression: aws.String("PK"),
	}
	err := d.client.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, _ bool) bool {
		for _, item := range page.Items {
			if pk, ok := item["PK"]; ok && pk.S != nil {
				names = append(names, *pk.S)
			}
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing scales")
	}
	sort.Strings(names)
	return names, nil
}
