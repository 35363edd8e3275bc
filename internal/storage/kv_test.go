package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blackivy/onboarding/internal/survey"
)

type fakeRedis struct {
	key   string
	value []byte
	ttl   time.Duration
	err   error
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.key = key
	f.value, _ = value.([]byte)
	f.ttl = ttl
	return redis.NewStatusResult("OK", f.err)
}

func (f *fakeRedis) Close() error { return nil }

func TestRedis_Submit(t *testing.T) {
	t.Parallel()

	fake := &fakeRedis{}
	r := &Redis{client: fake, ttl: time.Hour}

	resp := sampleResponse()
	id, err := r.Submit(context.Background(), resp)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, id)
	assert.Equal(t, "survey:response:"+resp.ID, fake.key)
	assert.Equal(t, time.Hour, fake.ttl)

	var got survey.Response
	require.NoError(t, json.Unmarshal(fake.value, &got))
	assert.Equal(t, resp.Answers, got.Answers)
}

func TestRedis_SubmitError(t *testing.T) {
	t.Parallel()

	r := &Redis{client: &fakeRedis{err: errors.New("connection refused")}}
	_, err := r.Submit(context.Background(), sampleResponse())
	assert.ErrorContains(t, err, "failed to store response")
}

type fakeCollection struct {
	docs []interface{}
	err  error
}

func (f *fakeCollection) InsertOne(_ context.Context, doc interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.docs = append(f.docs, doc)
	return &mongo.InsertOneResult{InsertedID: doc.(survey.Response).ID}, nil
}

func TestMongo_Submit(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{}
	m := &Mongo{collection: coll}

	resp := sampleResponse()
	id, err := m.Submit(context.Background(), resp)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, id)
	require.Len(t, coll.docs, 1)
	assert.Equal(t, resp, coll.docs[0])
	assert.NoError(t, m.Close(context.Background()))
}

func TestMongo_DuplicateIsStored(t *testing.T) {
	t.Parallel()

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	m := &Mongo{collection: &fakeCollection{err: dup}}

	id, err := m.Submit(context.Background(), sampleResponse())
	require.NoError(t, err)
	assert.Equal(t, sampleResponse().ID, id)
}

func TestMongo_SubmitError(t *testing.T) {
	t.Parallel()

	m := &Mongo{collection: &fakeCollection{err: errors.New("no reachable servers")}}
	_, err := m.Submit(context.Background(), sampleResponse())
	assert.ErrorContains(t, err, "failed to insert response")
}
