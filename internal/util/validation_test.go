package util

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type weekReq struct {
	StudyDays []int  `json:"studyDays" binding:"studydays"`
	Status    string `json:"status" binding:"omitempty,planstatus"`
}

func TestCustomValidators(t *testing.T) {
	RegisterValidators()

	tests := []struct {
		name string
		req  weekReq
		ok   bool
	}{
		{name: "valid", req: weekReq{StudyDays: []int{1, 3, 5}, Status: "active"}, ok: true},
		{name: "empty days", req: weekReq{StudyDays: []int{}}, ok: true},
		{name: "sunday", req: weekReq{StudyDays: []int{0, 6}}, ok: true},
		{name: "out of range", req: weekReq{StudyDays: []int{7}}},
		{name: "negative", req: weekReq{StudyDays: []int{-1}}},
		{name: "duplicate", req: weekReq{StudyDays: []int{2, 2}}},
		{name: "bad status", req: weekReq{Status: "paused"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestValidationMessageUsesJSONNames(t *testing.T) {
	RegisterValidators()
	err := binding.Validator.ValidateStruct(&weekReq{StudyDays: []int{9}})
	assert.Equal(t, "studyDays must hold distinct weekdays 0-6", ValidationMessage(err))
}

func TestParsePage(t *testing.T) {
	page, limit := ParsePage("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, limit)

	page, limit = ParsePage("3", "500")
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxPageSize, limit)

	page, limit = ParsePage("-2", "abc")
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, limit)
}
