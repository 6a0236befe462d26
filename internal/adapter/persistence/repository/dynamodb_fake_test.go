package repository

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type dynamoCall struct {
	Target string
	Body   map[string]any
}

type dynamoReply struct {
	Status int
	Body   string
}

// fakeDynamo answers DynamoDB JSON protocol calls with canned replies, in order.
type fakeDynamo struct {
	mu      sync.Mutex
	calls   []dynamoCall
	replies []dynamoReply
}

func newFakeDynamo(t *testing.T, replies ...dynamoReply) (*fakeDynamo, *dynamodb.Client) {
	t.Helper()
	f := &fakeDynamo{replies: replies}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.calls = append(f.calls, dynamoCall{
			Target: strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810."),
			Body:   body,
		})
		reply := dynamoReply{Status: http.StatusOK, Body: "{}"}
		if len(f.replies) > 0 {
			reply = f.replies[0]
			f.replies = f.replies[1:]
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(reply.Status)
		_, _ = w.Write([]byte(reply.Body))
	}))
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		RetryMaxAttempts: 1,
	})
	return f, client
}

func (f *fakeDynamo) Calls() []dynamoCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dynamoCall(nil), f.calls...)
}

func okReply(body string) dynamoReply {
	return dynamoReply{Status: http.StatusOK, Body: body}
}

func conditionalCheckFailed() dynamoReply {
	return dynamoReply{
		Status: http.StatusBadRequest,
		Body:   `{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`,
	}
}
