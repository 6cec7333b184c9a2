// Package tui provides the interactive terminal views for the registrar
// portal collections.
//
// This package implements an interactive table backed by the portal's JSON
// endpoints using the Bubble Tea framework. Each collection (domains, domain
// requests, organization members) supplies its columns and row mapping via
// the Collection interface; the model, update loop and view are shared.
//
// # Architecture
//
// The view never mutates table state directly. Key presses become actions,
// actions are reduced to a candidate state, and the candidate state rides
// inside the page fetch. Only a successful fetch commits the state, so the
// visible table and its controls always describe a page the server actually
// returned. Fetches carry a sequence number; a response whose sequence is no
// longer the latest is dropped, which keeps slow responses from overwriting
// newer ones.
//
// Row actions (deleting a domain request, removing a member) run through a
// confirmation modal registry that is rebuilt from each loaded page, so a
// modal can never outlive the row it belongs to.
package tui
