package academics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundNamesKindAndID(t *testing.T) {
	err := NotFound("assign teacher", KindTeacher, 999)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeNotFound, e.Code)
	assert.Equal(t, KindTeacher, e.Kind)
	assert.Equal(t, int64(999), e.ID)
	assert.Equal(t, "assign teacher: teacher with id 999 not found (not_found)", err.Error())
}

func TestWrapKeepsExistingCode(t *testing.T) {
	inner := ConstraintViolation("create student", "email already exists", nil)
	wrapped := Wrap(CodeInternal, "create student", fmt.Errorf("insert: %w", inner))

	assert.True(t, IsCode(wrapped, CodeConstraintViolation))
	assert.Equal(t, CodeConstraintViolation, CodeOf(wrapped))
}

func TestWrapAggregateFailurePreservesCause(t *testing.T) {
	err := Wrap(CodeAggregateFailure, "assemble courses", context.DeadlineExceeded)

	assert.True(t, IsCode(err, CodeAggregateFailure))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	nested := Wrap(CodeAggregateFailure, "assemble courses", NotFound("x", KindCourse, 1))
	assert.Equal(t, CodeAggregateFailure, CodeOf(nested))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(CodeInternal, "noop", nil))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.False(t, IsCode(nil, CodeNotFound))
}

func TestEdgeEndpoints(t *testing.T) {
	tests := []struct {
		edge   EdgeKind
		owner  Kind
		target Kind
		ok     bool
	}{
		{EdgeCourseTeacher, KindCourse, KindTeacher, true},
		{EdgeDepartmentHead, KindDepartment, KindTeacher, true},
		{EdgeStudentCourse, KindStudent, KindCourse, true},
		{EdgeKind("bogus"), "", "", false},
	}
	for _, tt := range tests {
		owner, target, ok := tt.edge.Endpoints()
		assert.Equal(t, tt.owner, owner, tt.edge)
		assert.Equal(t, tt.target, target, tt.edge)
		assert.Equal(t, tt.ok, ok, tt.edge)
	}
}
