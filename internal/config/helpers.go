package config

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
