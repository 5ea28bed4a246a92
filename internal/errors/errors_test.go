package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "spell not found",
			expected: "NOT_FOUND: spell not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid level",
			expected: "INVALID_ARGUMENT: invalid level",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("spell not found").
		WithMeta("name", "fireball").
		WithMeta("source", "seed")

	s.Equal("fireball", err.Meta["name"])
	s.Equal("seed", err.Meta["source"])

	err2 := errors.Internal("catalog error").
		WithMetaMap(map[string]any{
			"version": "catalog_1",
			"size":    12,
		})

	s.Equal("catalog_1", err2.Meta["version"])
	s.Equal(12, err2.Meta["size"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load catalog")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load catalog", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Contains(wrapped.Error(), "connection refused")

	s.Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	notFound := errors.NotFound("snapshot missing").WithMeta("key", "spellbook:snapshot:seed")
	wrapped := errors.Wrapf(notFound, "failed to read snapshot for %s", "seed")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("spellbook:snapshot:seed", wrapped.Meta["key"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.Internal("decode failed").WithMeta("field", "spells")
	wrapped := errors.WrapWithCode(base, errors.CodeDataLoss, "snapshot corrupted")

	s.Equal(errors.CodeDataLoss, wrapped.Code)
	s.Equal("spells", wrapped.Meta["field"])
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "ignored"))
}

func (s *ErrorsTestSuite) TestIs() {
	err := errors.NotFound("spell not found")

	s.True(errors.Is(err, errors.NotFound("anything")))
	s.False(errors.Is(err, errors.Internal("anything")))
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("missing", errors.GetMessage(errors.NotFound("missing")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      errors.NotFound("spell not found"),
			wantCode: codes.NotFound,
			wantMsg:  "spell not found",
		},
		{
			name:     "invalid argument",
			err:      errors.InvalidArgument("name is required"),
			wantCode: codes.InvalidArgument,
			wantMsg:  "name is required",
		},
		{
			name:     "unavailable",
			err:      errors.Unavailable("catalog not loaded"),
			wantCode: codes.Unavailable,
			wantMsg:  "catalog not loaded",
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("boom"),
			wantCode: codes.Internal,
			wantMsg:  "boom",
		},
		{
			name:     "existing status",
			err:      status.Error(codes.Canceled, "canceled"),
			wantCode: codes.Canceled,
			wantMsg:  "canceled",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.wantCode, st.Code())
			s.Equal(tc.wantMsg, st.Message())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsMeta() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name")
	original := vb.Build()

	roundTripped := errors.FromGRPCError(errors.ToGRPCError(original))

	s.True(errors.IsInvalidArgument(roundTripped))
	meta := errors.GetMeta(roundTripped)
	s.Require().NotNil(meta)
	fields, ok := meta["validation_errors"].(map[string]any)
	s.Require().True(ok)
	s.Equal([]any{"is required"}, fields["name"])
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.NotFound, "spell not found"))
	s.True(errors.IsNotFound(err))
	s.Equal("spell not found", errors.GetMessage(err))

	plain := fmt.Errorf("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))
	s.Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Equal(404, errors.CodeNotFound.HTTPStatus())
	s.Equal(400, errors.CodeInvalidArgument.HTTPStatus())
	s.Equal(503, errors.CodeUnavailable.HTTPStatus())
	s.Equal(500, errors.CodeDataLoss.HTTPStatus())
}
