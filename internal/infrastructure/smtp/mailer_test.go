package smtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOTPTemplate(t *testing.T) {
	template := "Hello {{name}}, your code is {{otp}}. Use {{otp}} within 10 minutes."

	body := RenderOTPTemplate(template, "Jane", "123456")

	assert.Equal(t, "Hello Jane, your code is 123456. Use 123456 within 10 minutes.", body)
}

func TestRenderOTPTemplateNoPlaceholders(t *testing.T) {
	body := RenderOTPTemplate("plain body", "Jane", "123456")
	assert.Equal(t, "plain body", body)
}
