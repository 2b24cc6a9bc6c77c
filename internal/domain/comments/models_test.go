//go:build unit
// +build unit

package comments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComment_Validate(t *testing.T) {
	c := &Comment{Text: "nice shot", UserID: 1, PostID: 2}
	assert.NoError(t, c.Validate())

	c.Text = ""
	assert.Error(t, c.Validate())

	c.Text = strings.Repeat("a", 501)
	assert.Error(t, c.Validate())
}

func TestPage_Validate(t *testing.T) {
	assert.NoError(t, Page{Limit: DefaultLimit}.Validate())
	assert.NoError(t, Page{Limit: MaxLimit, Offset: 20}.Validate())
	assert.ErrorIs(t, Page{Limit: 0}.Validate(), ErrInvalidPage)
	assert.Error(t, Page{Limit: MaxLimit + 1}.Validate())
	assert.Error(t, Page{Limit: 1, Offset: -1}.Validate())
}
