package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, body string, b64 bool) (events.LambdaFunctionURLResponse, map[string]any) {
	t.Helper()
	if b64 {
		body = base64.StdEncoding.EncodeToString([]byte(body))
	}
	resp, err := handler(context.Background(), events.LambdaFunctionURLRequest{Body: body, IsBase64Encoded: b64})
	require.NoError(t, err)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &doc))
	return resp, doc
}

func TestHandler_Solves(t *testing.T) {
	resp, doc := call(t, `{"name":"tiny","stacks":[[1,2],[]],"height":2,"seed":4,
		"stop_at_lower_bound":true,"path":true}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Equal(t, "tiny", doc["name"])
	assert.EqualValues(t, 1, doc["moves"])
	assert.EqualValues(t, 4, doc["seed"])
	assert.Len(t, doc["path"], 4)
}

func TestHandler_Base64(t *testing.T) {
	resp, doc := call(t, `{"stacks":[[3,1],[2]],"height":1,"cap_mode":"variable","max_trajectories":3}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Equal(t, "request", doc["name"])
	assert.Equal(t, "NC", doc["cap_mode"])
	assert.EqualValues(t, 0, doc["moves"])
}

func TestHandler_BadRequests(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"stacks":`,
		"missing height": `{"stacks":[[1]]}`,
		"bad cap mode":   `{"stacks":[[1]],"height":1,"cap_mode":"wide"}`,
		"bad width":      `{"stacks":[[1],[]],"height":2,"width":5}`,
		"missing block":  `{"stacks":[[1]],"items":2,"height":2}`,
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			resp, doc := call(t, body, false)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, doc["error"])
		})
	}
}
