package validate

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 3

// Registration returns the schema for registration payloads.
// confirmPassword is compared against password before schema validation
// runs, so it is not declared here.
func Registration() Schema {
	return Schema{
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true},
			{Name: "email", Kind: KindString, Required: true, Email: true},
			{Name: "password", Kind: KindString, Required: true, MinLen: MinPasswordLen},
		},
	}
}

// Login returns the schema for login payloads.
func Login() Schema {
	return Schema{
		Fields: []Field{
			{Name: "email", Kind: KindString, Required: true, Email: true},
			{Name: "password", Kind: KindString, Required: true, MinLen: MinPasswordLen},
		},
	}
}

// Transaction returns the schema for transaction payloads.
// The transaction type travels in the URL, not the body, so it is
// checked separately.
func Transaction() Schema {
	return Schema{
		Fields: []Field{
			{Name: "value", Kind: KindNumber, Required: true, Positive: true},
			{Name: "description", Kind: KindString, Required: true},
		},
	}
}
