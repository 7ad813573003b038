package people

// ResolvePeople projects the fully merged set to the person schema. Some
// constituent rows in the source have a creation timestamp chronologically
// after the modification timestamp; that is treated as a data entry error,
// so created becomes the earlier of the pair and updated the later. Rows
// with no constituent match keep nil timestamps.
func ResolvePeople(rows ConstituentEmails) People {
	out := make(People, 0, len(rows))
	for _, r := range rows {
		p := Person{Email: r.Email, Code: r.Source, Unsub: r.Unsub}
		if r.ConsCreated != nil && r.ConsModified != nil {
			created, updated := *r.ConsCreated, *r.ConsModified
			if updated.Before(created) {
				created, updated = updated, created
			}
			p.CreatedAt = &created
			p.UpdatedAt = &updated
		}
		out = append(out, p)
	}
	return out
}
