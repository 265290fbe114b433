package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tournevent/dhlexpress/pkg/express/response"
)

func TestErrors(t *testing.T) {
	notes := []response.Notification{
		{Code: 0, Message: "ok"},
		{Code: 1001, Message: "The requested product(s) not available"},
	}

	errs := response.Errors(notes)
	assert.Len(t, errs, 1)
	assert.Equal(t, 1001, errs[0].Code)
	assert.Empty(t, response.Errors(notes[:1]))
}

func TestAWBInfo_Delivered(t *testing.T) {
	assert.False(t, response.AWBInfo{}.Delivered())

	info := response.AWBInfo{Events: []response.Event{{Code: "PU"}, {Code: "OK"}}}
	assert.True(t, info.Delivered())

	info.Events = append(info.Events, response.Event{Code: "CC"})
	assert.False(t, info.Delivered())
}
