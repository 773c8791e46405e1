package postgres

// nullString and nullInt hand optional fields to the driver as plain values or NULL

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(i *int) any {
	if i == nil {
		return nil
	}
	return int64(*i)
}
