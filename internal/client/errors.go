// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrInvalidAnswers is returned when the answers file cannot be decoded.
	ErrInvalidAnswers = errors.New("invalid answers file")

	// ErrAnswerFileNotFound is returned when a file answer does not point to
	// a regular local file.
	ErrAnswerFileNotFound = errors.New("answered file does not exist")

	// ErrRequiredAnswer is returned when a control that refuses empty input
	// has no answer.
	ErrRequiredAnswer = errors.New("required answer is missing")

	errNoServices = errors.New("client services are not created")
)
