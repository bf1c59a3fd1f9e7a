// Package askweb provides a CLI tool for asking questions about websites.
// It crawls a site, splits page content into word-count chunks, stores the
// chunks as embeddings in a vector index, and answers natural language
// questions with retrieval-augmented generation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., qdrant/, gemini/, goquery/).
package askweb
