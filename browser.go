// File: propread/browser.go
package propread

// Browser identifies which browser a test run should drive. It is the
// canonical enum bound from browser.name directives in test-automation
// configurations.
type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
)

var browserEnum = NewEnum(map[string]Browser{
	string(BrowserChrome):  BrowserChrome,
	string(BrowserFirefox): BrowserFirefox,
})

func (b Browser) String() string { return string(b) }

// UnmarshalText decodes a browser name, ignoring case. This is the
// structural decoding path used when a directive carries no parser tag.
func (b *Browser) UnmarshalText(text []byte) error {
	v, err := browserEnum.ParseValue(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// BrowserParser returns the parser for browser directives. Blank input
// yields BrowserChrome; unknown names fail with *UnknownValueError.
func BrowserParser() Parser {
	return browserEnum.WithDefault(BrowserChrome)
}
