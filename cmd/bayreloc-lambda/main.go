// Command bayreloc-lambda serves the solver behind an AWS Lambda function URL.
//
// The request body is the JSON instance form plus search settings:
//
//	{"name": "b1", "stacks": [[1,2],[]], "height": 2, "cap_mode": "constant",
//	 "width": -1, "time_limit_ms": 2000, "seed": 7, "max_trajectories": 0,
//	 "stop_at_lower_bound": true, "path": false}
//
// The response is the JSON summary of the run.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/instance"
	"github.com/katalvlaran/bayreloc/report"
	"github.com/katalvlaran/bayreloc/search"
)

const (
	defaultTimeLimit = 5 * time.Second
	maxTimeLimit     = 25 * time.Second
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	in, err := instance.ReadJSON([]byte(body))
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	if in.Name == "" {
		in.Name = "request"
	}

	opts, err := requestOptions(gjson.Parse(body))
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	e, err := search.NewEngine(in.Bay, in.Items, opts...)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	res, err := e.Solve(ctx)
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}
	log.WithFields(log.Fields{
		"instance":     in.Name,
		"moves":        res.Moves,
		"found":        res.Found,
		"trajectories": res.Trajectories,
	}).Info("solved")

	summary, err := report.NewSummary(in, e.Options(), res, gjson.Get(body, "path").Bool())
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}
	var buf bytes.Buffer
	if err = summary.WriteJSON(&buf); err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}

	return events.LambdaFunctionURLResponse{
		StatusCode: http.StatusOK,
		Headers:    jsonHeader,
		Body:       buf.String(),
	}, nil
}

// requestOptions maps the request settings onto search options.
func requestOptions(req gjson.Result) ([]search.Option, error) {
	height := req.Get("height")
	if !height.Exists() {
		return nil, errors.New("missing height")
	}

	mode := bay.ConstantCap
	if m := req.Get("cap_mode"); m.Exists() {
		var err error
		if mode, err = bay.ParseCapMode(m.String()); err != nil {
			return nil, err
		}
	}

	limit := defaultTimeLimit
	if ms := req.Get("time_limit_ms"); ms.Exists() {
		limit = time.Duration(ms.Int()) * time.Millisecond
	}
	if limit > maxTimeLimit {
		limit = maxTimeLimit
	}

	seed := req.Get("seed").Int()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width := search.DefaultWidth
	if w := req.Get("width"); w.Exists() {
		width = int(w.Int())
	}

	opts := []search.Option{
		search.WithTimeLimit(limit),
		search.WithWidth(width),
		search.WithSeed(seed),
		search.WithMaxTrajectories(int(req.Get("max_trajectories").Int())),
	}
	if mode == bay.VariableCap {
		opts = append(opts, search.WithVariableCap(int(height.Int())))
	} else {
		opts = append(opts, search.WithConstantCap(int(height.Int())))
	}
	if req.Get("stop_at_lower_bound").Bool() {
		opts = append(opts, search.WithStopAtLowerBound())
	}
	return opts, nil
}

func errResp(status int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: status, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	lambda.Start(handler)
}
