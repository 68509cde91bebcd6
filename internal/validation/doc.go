// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator with the application's
// custom tags and translates failures into short human-readable messages.
//
// # Custom Tags
//
//   - topic: the field's Valid() method must report true. Used for topic keys
//     without this package importing the catalog.
//   - notblank: a string must contain something other than whitespace.
//
// # Usage
//
//	type RecommendRequest struct {
//	    Preferred    interface{} `validate:"required"`
//	    NonPreferred interface{} `validate:"required"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.Error(), nil)
//	    return
//	}
package validation
