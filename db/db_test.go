package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/tonality/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in a map and answers the calls DynamoStore makes.
// Batch reads leave every key past the first two unprocessed once, to
// exercise the retry loop.
type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items      map[string]map[string]*dynamodb.AttributeValue
	batchCalls int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]*dynamodb.AttributeValue)}
}

func (f *fakeDynamo) PutItemWithContext(_ aws.Context, in *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	f.items[*in.Item["PK"].S] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItemWithContext(_ aws.Context, in *dynamodb.GetItemInput, _ ...request.Option) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[*in.Key["PK"].S]}, nil
}

func (f *fakeDynamo) BatchGetItemWithContext(_ aws.Context, in *dynamodb.BatchGetItemInput, _ ...request.Option) (*dynamodb.BatchGetItemOutput, error) {
	f.batchCalls++
	out := &dynamodb.BatchGetItemOutput{
		Responses:       make(map[string][]map[string]*dynamodb.AttributeValue),
		UnprocessedKeys: make(map[string]*dynamodb.KeysAndAttributes),
	}
	for table, ka := range in.RequestItems {
		for i, k := range ka.Keys {
			if f.batchCalls == 1 && i >= 2 {
				if out.UnprocessedKeys[table] == nil {
					out.UnprocessedKeys[table] = &dynamodb.KeysAndAttributes{}
				}
				out.UnprocessedKeys[table].Keys = append(out.UnprocessedKeys[table].Keys, k)
				continue
			}
			if item, ok := f.items[*k["PK"].S]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
	}
	return out, nil
}

func (f *fakeDynamo) ScanPagesWithContext(_ aws.Context, _ *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, _ ...request.Option) error {
	var items []map[string]*dynamodb.AttributeValue
	for _, item := range f.items {
		items = append(items, map[string]*dynamodb.AttributeValue{"PK": item["PK"]})
	}
	// two pages
	half := len(items) / 2
	if fn(&dynamodb.ScanOutput{Items: items[:half]}, false) {
		fn(&dynamodb.ScanOutput{Items: items[half:]}, true)
	}
	return nil
}

func testStore(t *testing.T, store ScaleStore) {
	assert := assert.New(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "bebop")
	assert.True(errors.Is(err, ErrNotFound))

	bebop := scale.MustParse("1 2 3 4 5 6 m7 j7")
	require.NoError(t, store.Put(ctx, "bebop", bebop))
	require.NoError(t, store.Put(ctx, "blues", scale.MustParse("1 m3 4 a4 5 m7")))
	require.NoError(t, store.Put(ctx, "pentatonic", scale.MustParse("1 2 3 5 6")))

	got, err := store.Get(ctx, "bebop")
	require.NoError(t, err)
	assert.Equal(bebop, got)

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal([]string{"bebop", "blues", "pentatonic"}, names)

	many, err := store.GetMany(ctx, []string{"pentatonic", "missing", "bebop", "blues"})
	require.NoError(t, err)
	assert.Len(many, 3)
	assert.Equal(bebop, many["bebop"])
	assert.Equal("1 j2 j3 5 j6", many["pentatonic"].String())

	// overwrite
	require.NoError(t, store.Put(ctx, "bebop", scale.Major()))
	got, err = store.Get(ctx, "bebop")
	require.NoError(t, err)
	assert.Equal(scale.Major(), got)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestDynamoStore(t *testing.T) {
	fake := newFakeDynamo()
	testStore(t, NewDynamoStoreWithClient(fake, "tonality-scales"))
	assert.Equal(t, 2, fake.batchCalls)
}

func TestDynamoStoreBatches(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoStoreWithClient(fake, "tonality-scales")
	ctx := context.Background()
	var names []string
	for i := 0; i < 150; i++ {
		name := fmt.Sprintf("scale-%03d", i)
		names = append(names, name)
		require.NoError(t, store.Put(ctx, name, scale.Dorian()))
	}
	many, err := store.GetMany(ctx, names)
	require.NoError(t, err)
	assert.Len(t, many, 150)
	// the first call leaves keys unprocessed, then one call per batch of 100
	assert.Equal(t, 3, fake.batchCalls)
}

func TestDynamoStoreCorruptItem(t *testing.T) {
	fake := newFakeDynamo()
	fake.items["broken"] = map[string]*dynamodb.AttributeValue{
		"PK":    {S: aws.String("broken")},
		"Scale": {S: aws.String("1 m4")},
	}
	_, err := NewDynamoStoreWithClient(fake, "t").Get(context.Background(), "broken")
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(Config{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = NewStore(Config{Endpoint: "http://localhost:8000", Region: "localhost", Table: "t"})
	require.NoError(t, err)
	assert.IsType(t, &DynamoStore{}, store)
}
