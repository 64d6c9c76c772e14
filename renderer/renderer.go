// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renderer defines the output seam for scenes: a Renderer
// turns a [scene.Scene] into bytes in some format. Implementations
// live in subpackages so that the scene and item packages stay free
// of rendering dependencies.
package renderer

import "github.com/200266785/pyqtgraph/scene"

// Renderer renders a scene to an encoded image or document.
type Renderer interface {
	Render(sc *scene.Scene) ([]byte, error)
}
