package money

// MarshalText кодирует сумму в формате String. Благодаря этому в JSON сумма
// записывается строкой: "40,55".
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText разбирает сумму строго, как Parse.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
