package domain

// Setting names read at request time.
const (
	SettingRecaptchaSecretKey          = "recaptchasecretkey"
	SettingForgotPasswordEmailTemplate = "ForgotPasswordEmailTemplate"
)

// Setting is a name/value row used as an ad-hoc configuration table
// (captcha secret, email templates). Values are fetched by name per request,
// never cached.
type Setting struct {
	Name  string `json:"setting_name" dynamodbav:"setting_name" validate:"required"`
	Value string `json:"setting_value" dynamodbav:"setting_value" validate:"required"`
}
