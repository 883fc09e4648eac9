// Package siteqa answers natural-language questions about the contents of a
// single website. It crawls the site once, builds a two-tier index (structured
// per-page summaries plus full extracted text), and answers each question with
// two LLM calls: one to select relevant pages, one to generate an answer
// grounded in their text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gemini/), with
// orchestration in index/ and query/.
package siteqa
