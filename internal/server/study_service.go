package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/at-ishikawa/lingocard/internal/session"
)

// StudyServiceName is the fully-qualified name of the study service.
// Requests and responses are protobuf well-known types: snapshots and
// dispatched actions travel as google.protobuf.Struct, so both the Connect
// JSON and binary protocols work without generated stubs.
const StudyServiceName = "lingocard.v1.StudyService"

const (
	StudyServiceSnapshotProcedure = "/lingocard.v1.StudyService/Snapshot"
	StudyServiceDispatchProcedure = "/lingocard.v1.StudyService/Dispatch"
	StudyServiceWatchProcedure    = "/lingocard.v1.StudyService/Watch"
)

type StudyServiceHandler interface {
	Snapshot(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[structpb.Struct], error)
	Dispatch(context.Context, *connect.Request[structpb.Struct]) (*connect.Response[wrapperspb.StringValue], error)
	Watch(context.Context, *connect.Request[emptypb.Empty], *connect.ServerStream[structpb.Struct]) error
}

// NewStudyServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewStudyServiceHandler(svc StudyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	snapshotHandler := connect.NewUnaryHandler(
		StudyServiceSnapshotProcedure,
		svc.Snapshot,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)
	dispatchHandler := connect.NewUnaryHandler(StudyServiceDispatchProcedure, svc.Dispatch, opts...)
	watchHandler := connect.NewServerStreamHandler(StudyServiceWatchProcedure, svc.Watch, opts...)

	return "/" + StudyServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case StudyServiceSnapshotProcedure:
			snapshotHandler.ServeHTTP(w, r)
		case StudyServiceDispatchProcedure:
			dispatchHandler.ServeHTTP(w, r)
		case StudyServiceWatchProcedure:
			watchHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// StudyServiceClient drives a session served by another process.
type StudyServiceClient struct {
	snapshot *connect.Client[emptypb.Empty, structpb.Struct]
	dispatch *connect.Client[structpb.Struct, wrapperspb.StringValue]
	watch    *connect.Client[emptypb.Empty, structpb.Struct]
}

func NewStudyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *StudyServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &StudyServiceClient{
		snapshot: connect.NewClient[emptypb.Empty, structpb.Struct](
			httpClient,
			baseURL+StudyServiceSnapshotProcedure,
			append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
		),
		dispatch: connect.NewClient[structpb.Struct, wrapperspb.StringValue](httpClient, baseURL+StudyServiceDispatchProcedure, opts...),
		watch:    connect.NewClient[emptypb.Empty, structpb.Struct](httpClient, baseURL+StudyServiceWatchProcedure, opts...),
	}
}

func (c *StudyServiceClient) Snapshot(ctx context.Context) (session.State, error) {
	res, err := c.snapshot.CallUnary(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		return session.State{}, fmt.Errorf("snapshot.CallUnary() > %w", err)
	}
	state, err := decodeState(res.Msg)
	if err != nil {
		return session.State{}, fmt.Errorf("decodeState() > %w", err)
	}
	return state, nil
}

func (c *StudyServiceClient) Dispatch(ctx context.Context, action session.Action) error {
	req, err := NewDispatchRequest(action)
	if err != nil {
		return fmt.Errorf("NewDispatchRequest() > %w", err)
	}
	msg, err := toStruct(req)
	if err != nil {
		return fmt.Errorf("toStruct() > %w", err)
	}
	if _, err := c.dispatch.CallUnary(ctx, connect.NewRequest(msg)); err != nil {
		return fmt.Errorf("dispatch.CallUnary() > %w", err)
	}
	return nil
}

// Watch streams snapshots until ctx is done or the server ends the stream.
func (c *StudyServiceClient) Watch(ctx context.Context) (<-chan session.State, error) {
	stream, err := c.watch.CallServerStream(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		return nil, fmt.Errorf("watch.CallServerStream() > %w", err)
	}

	updates := make(chan session.State)
	go func() {
		defer close(updates)
		defer func() {
			_ = stream.Close()
		}()
		for stream.Receive() {
			state, err := decodeState(stream.Msg())
			if err != nil {
				slog.Warn("dropped an undecodable snapshot", "error", err)
				continue
			}
			select {
			case updates <- state:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}
