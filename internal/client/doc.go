// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the movie client's command-line runtime.
//
// It maps sub-commands onto the catalog and session services, prints results
// as indented JSON on stdout and reports every failure on stderr with one
// generic message.
package client
