// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/atotto/clipboard"

// systemClipboard writes to the OS clipboard (xclip/xsel/wl-copy on Linux,
// pbcopy on macOS).
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
