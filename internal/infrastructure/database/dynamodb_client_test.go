package database

import (
	"context"
	"testing"

	"lista_presentes/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.DynamoDBConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestDynamoDBEndpointOption(t *testing.T) {
	var o dynamodb.Options
	DynamoDBEndpointOption("http://dynamodb:8000")(&o)
	assert.Equal(t, "http://dynamodb:8000", aws.ToString(o.BaseEndpoint))

	var empty dynamodb.Options
	DynamoDBEndpointOption("")(&empty)
	assert.Nil(t, empty.BaseEndpoint)
}
