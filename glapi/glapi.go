// SPDX-License-Identifier: Unlicense OR MIT

// Package glapi models graphics API versions and the shader
// versions associated with them.
package glapi

import (
	"fmt"
	"strings"
)

// Names of the graphics APIs a Version can refer to.
const (
	APIOpenGL   = "OpenGL"
	APIOpenGLES = "OpenGL ES"
	APIVulkan   = "Vulkan"
	APIDirectX  = "DirectX"
	APIMetal    = "Metal"
)

// Version is a graphics API version.
type Version struct {
	// API is the name of the API, one of the API constants.
	API string `toml:"api"`
	// Major version.
	Major int `toml:"major"`
	// Minor version.
	Minor int `toml:"minor"`
}

// OpenGL returns an OpenGL version.
func OpenGL(major, minor int) Version {
	return Version{API: APIOpenGL, Major: major, Minor: minor}
}

// OpenGLES returns an OpenGL ES version. Major and minor zero
// means any available version.
func OpenGLES(major, minor int) Version {
	return Version{API: APIOpenGLES, Major: major, Minor: minor}
}

// Vulkan returns a Vulkan version.
func Vulkan(major, minor int) Version {
	return Version{API: APIVulkan, Major: major, Minor: minor}
}

// DirectX returns a DirectX version.
func DirectX(major, minor int) Version {
	return Version{API: APIDirectX, Major: major, Minor: minor}
}

// Metal returns a Metal version.
func Metal(major, minor int) Version {
	return Version{API: APIMetal, Major: major, Minor: minor}
}

func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.API, v.Major, v.Minor)
}

// ParseOpenGL parses strings like "3.2" into an OpenGL version.
func ParseOpenGL(s string) (Version, error) {
	var major, minor int
	if n, err := fmt.Sscanf(s, "%d.%d", &major, &minor); n != 2 || err != nil {
		return Version{}, fmt.Errorf("%q is not a valid OpenGL version", s)
	}
	return OpenGL(major, minor), nil
}

// UnsupportedAPIError reports a requested graphics API this
// window back-end cannot provide.
type UnsupportedAPIError struct {
	// Found is the API that was requested.
	Found string
	// Expected is the list of supported APIs.
	Expected []string
}

func (e *UnsupportedAPIError) Error() string {
	return fmt.Sprintf("unsupported graphics API %s, expected %s",
		e.Found, strings.Join(e.Expected, ", "))
}
