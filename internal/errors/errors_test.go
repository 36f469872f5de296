package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-warband/internal/errors"
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
			name:     "construction error",
			code:     errors.CodeConstruction,
			message:  "no sword provided",
			expected: "CONSTRUCTION: no sword provided",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestConstruction() {
	err := errors.Construction("knight requires both horse and spear").
		WithMeta("missing", []string{"spear", "horse"})

	s.Assert().True(errors.IsConstruction(err))
	s.Assert().False(errors.IsInvalidArgument(err))
	s.Assert().Equal([]string{"spear", "horse"}, errors.GetMeta(err)["missing"])
	s.Assert().Equal("knight requires both horse and spear", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("roller exhausted")
	wrapped := errors.Wrap(baseErr, "failed to draw attacker")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to draw attacker", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.Construction("no bow provided").WithMeta("missing", []string{"bow"})
	wrapped := errors.Wrap(baseErr, "failed to assemble archer")

	s.Assert().True(errors.IsConstruction(wrapped))
	s.Assert().Equal("failed to assemble archer", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal([]string{"bow"}, errors.GetMeta(wrapped)["missing"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Construction("no spear provided").WithMeta("missing", []string{"spear"})
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInternal, "recipe left builder incomplete")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal([]string{"spear"}, wrapped.Meta["missing"])
	s.Assert().True(errors.Is(wrapped, errors.Construction("")))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.Construction("a")
	err2 := errors.Construction("b")
	err3 := errors.InvalidArgument("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.Canceled("stopped")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(err))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Nil(errors.GetMeta(stdErr))
}
