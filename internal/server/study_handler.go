// Package server exposes a study session over Connect RPC.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/at-ishikawa/lingocard/internal/session"
)

// Session is the part of *session.Machine the handler serves.
type Session interface {
	Snapshot() session.State
	Dispatch(ctx context.Context, action session.Action) error
	Subscribe() (<-chan session.State, func())
}

// StudyHandler implements the StudyServiceHandler interface.
type StudyHandler struct {
	session    Session
	validator  *validator.Validate
	translator ut.Translator
	logger     *slog.Logger
}

func NewStudyHandler(s Session, logger *slog.Logger) (*StudyHandler, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		session:    s,
		validator:  validate,
		translator: trans,
		logger:     logger,
	}, nil
}

func (h *StudyHandler) Snapshot(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[structpb.Struct], error) {
	msg, err := encodeState(h.session.Snapshot())
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("encodeState() > %w", err))
	}
	return connect.NewResponse(msg), nil
}

// Dispatch validates and enqueues one action. Actions gated by an in-flight
// fetch are accepted and have no effect.
func (h *StudyHandler) Dispatch(
	ctx context.Context,
	req *connect.Request[structpb.Struct],
) (*connect.Response[wrapperspb.StringValue], error) {
	var dispatchReq DispatchRequest
	if err := fromStruct(req.Msg, &dispatchReq); err != nil {
		return nil, invalidArgument(err, []*errdetails.BadRequest_FieldViolation{
			{Field: "action", Description: err.Error()},
		})
	}
	action, connectErr := h.validateRequest(&dispatchReq)
	if connectErr != nil {
		return nil, connectErr
	}

	if err := h.session.Dispatch(ctx, action); err != nil {
		switch {
		case errors.Is(err, session.ErrStopped):
			return nil, connect.NewError(connect.CodeUnavailable, err)
		case errors.Is(err, context.DeadlineExceeded):
			return nil, connect.NewError(connect.CodeDeadlineExceeded, err)
		case errors.Is(err, context.Canceled):
			return nil, connect.NewError(connect.CodeCanceled, err)
		}
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("dispatch: %w", err))
	}

	name := session.ActionName(action)
	h.logger.Debug("dispatched", "action", name)
	return connect.NewResponse(wrapperspb.String(name)), nil
}

// Watch streams the latest snapshot after every change until the client
// disconnects or the session stops.
func (h *StudyHandler) Watch(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
	stream *connect.ServerStream[structpb.Struct],
) error {
	updates, unsubscribe := h.session.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-updates:
			if !ok {
				return nil
			}
			msg, err := encodeState(state)
			if err != nil {
				return connect.NewError(connect.CodeInternal, fmt.Errorf("encodeState() > %w", err))
			}
			if err := stream.Send(msg); err != nil {
				return fmt.Errorf("stream.Send() > %w", err)
			}
		}
	}
}

func (h *StudyHandler) validateRequest(req *DispatchRequest) (session.Action, *connect.Error) {
	actions := req.actions()
	if len(actions) != 1 {
		err := fmt.Errorf("exactly one action must be set, got %d", len(actions))
		return nil, invalidArgument(err, []*errdetails.BadRequest_FieldViolation{
			{Field: "action", Description: err.Error()},
		})
	}

	if err := h.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("validator.Struct() > %w", err))
		}
		var fieldViolations []*errdetails.BadRequest_FieldViolation
		var messages []string
		for _, e := range validationErrors {
			description := e.Translate(h.translator)
			messages = append(messages, description)
			fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       strings.TrimPrefix(e.Namespace(), "DispatchRequest."),
				Description: description,
			})
		}
		return nil, invalidArgument(errors.New(strings.Join(messages, ", ")), fieldViolations)
	}
	return actions[0], nil
}

func invalidArgument(err error, fieldViolations []*errdetails.BadRequest_FieldViolation) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{
			tag: "view",
			fn: func(fl validator.FieldLevel) bool {
				_, err := session.ParseView(fl.Field().String())
				return err == nil
			},
			message: fmt.Sprintf("{0} must be one of %v", session.AllViews),
		},
		{
			tag: "native_language",
			fn: func(fl validator.FieldLevel) bool {
				_, err := inference.ParseNativeLanguage(fl.Field().String())
				return err == nil
			},
			message: fmt.Sprintf("{0} must be one of %v", inference.AllNativeLanguages),
		},
		{
			tag: "level",
			fn: func(fl validator.FieldLevel) bool {
				_, err := inference.ParseLevel(fl.Field().String())
				return err == nil
			},
			message: fmt.Sprintf("{0} must be one of %v", inference.AllLevels),
		},
	}
	for _, rule := range rules {
		if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", rule.tag, err)
		}
		if err := validate.RegisterTranslation(rule.tag, trans, func(ut ut.Translator) error {
			return ut.Add(rule.tag, rule.message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field())
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", rule.tag, err)
		}
	}

	return validate, trans, nil
}
