// Package research estimates many survey responses at once and summarises
// them for analysis.
//
// Responses are split into fixed-size batches that run concurrently under
// an errgroup limit. Each response is sanitized, estimated, compared with
// the respondent's quiz and self-estimate, and stored as a survey.Record.
// Summarize reduces the estimates to descriptive statistics.
package research
