package people

// FilterPrimary keeps only the rows flagged as a constituent's primary
// address. The source promises at most one primary row per constituent;
// that is assumed here, not verified.
func (es PrimaryEmails) FilterPrimary() PrimaryEmails {
	out := make(PrimaryEmails, 0, len(es))
	for _, e := range es {
		if e.IsPrimary {
			out = append(out, e)
		}
	}
	return out
}

// FilterChapter keeps only subscription rows for the given chapter. Rows
// with no chapter id never match.
func (cs ChapterSubscriptions) FilterChapter(chapterID int64) ChapterSubscriptions {
	out := make(ChapterSubscriptions, 0, len(cs))
	for _, s := range cs {
		if s.ChapterID != nil && *s.ChapterID == chapterID {
			out = append(out, s)
		}
	}
	return out
}
