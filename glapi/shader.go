// SPDX-License-Identifier: Unlicense OR MIT

package glapi

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// GL models the OpenGL versions that have an associated GLSL
// version. The numeric value is major*10+minor, so versions
// order naturally.
type GL uint16

const (
	GL20 GL = 20
	GL21 GL = 21
	GL30 GL = 30
	GL31 GL = 31
	GL32 GL = 32
	GL33 GL = 33
	GL40 GL = 40
	GL41 GL = 41
	GL42 GL = 42
	GL43 GL = 43
	GL44 GL = 44
	GL45 GL = 45
)

// GLSL models versions of the OpenGL Shading Language. The
// numeric value is major*100+minor, so versions order naturally.
//
// For OpenGL 3.3 and above the GLSL version is the same as the
// OpenGL version.
type GLSL uint16

const (
	GLSL110 GLSL = 110
	GLSL120 GLSL = 120
	GLSL130 GLSL = 130
	GLSL140 GLSL = 140
	GLSL150 GLSL = 150
	GLSL330 GLSL = 330
	GLSL400 GLSL = 400
	GLSL410 GLSL = 410
	GLSL420 GLSL = 420
	GLSL430 GLSL = 430
	GLSL440 GLSL = 440
	GLSL450 GLSL = 450
)

var glToGLSL = map[GL]GLSL{
	GL20: GLSL110,
	GL21: GLSL120,
	GL30: GLSL130,
	GL31: GLSL140,
	GL32: GLSL150,
	GL33: GLSL330,
	GL40: GLSL400,
	GL41: GLSL410,
	GL42: GLSL420,
	GL43: GLSL430,
	GL44: GLSL440,
	GL45: GLSL450,
}

// GLSL returns the GLSL version associated with v.
func (v GL) GLSL() GLSL {
	g, ok := glToGLSL[v]
	if !ok {
		panic("invalid GL version")
	}
	return g
}

// GL returns the OpenGL version associated with g.
func (g GLSL) GL() GL {
	for v, glsl := range glToGLSL {
		if glsl == g {
			return v
		}
	}
	panic("invalid GLSL version")
}

// GLFromVersion converts a graphics API version to a GL value.
// It reports false for APIs other than OpenGL and for OpenGL
// versions without an associated GLSL version.
func GLFromVersion(ver Version) (GL, bool) {
	if ver.API != APIOpenGL {
		return 0, false
	}
	v := GL(ver.Major*10 + ver.Minor)
	_, ok := glToGLSL[v]
	return v, ok
}

// Version returns v as a graphics API version.
func (v GL) Version() Version {
	return OpenGL(int(v)/10, int(v)%10)
}

func (v GL) String() string {
	return strconv.Itoa(int(v)/10) + "." + strconv.Itoa(int(v)%10)
}

func (g GLSL) String() string {
	return strconv.Itoa(int(g)/100) + "." + fmt.Sprintf("%02d", int(g)%100)
}

// ParseGL parses strings like "3.2" into a GL version.
func ParseGL(s string) (GL, error) {
	ver, err := ParseOpenGL(s)
	if err != nil {
		return 0, err
	}
	v, ok := GLFromVersion(ver)
	if !ok {
		return 0, fmt.Errorf("%q is not a valid OpenGL version", s)
	}
	return v, nil
}

// ParseGLSL parses strings like "1.50" into a GLSL version.
func ParseGLSL(s string) (GLSL, error) {
	var major, minor int
	if n, err := fmt.Sscanf(s, "%d.%d", &major, &minor); n != 2 || err != nil {
		return 0, fmt.Errorf("%q is not a valid GLSL version", s)
	}
	g := GLSL(major*100 + minor)
	for _, glsl := range glToGLSL {
		if glsl == g {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid GLSL version", s)
}

// Shaders holds shader sources indexed by GLSL version and picks
// the best compatible source for a context version.
type Shaders[S any] struct {
	versions []GLSL
	sources  []S
}

// Set registers source for a shader version, replacing any
// previous source for the same version.
func (s *Shaders[S]) Set(v GLSL, source S) *Shaders[S] {
	i, ok := slices.BinarySearch(s.versions, v)
	if ok {
		s.sources[i] = source
		return s
	}
	s.versions = slices.Insert(s.versions, i, v)
	s.sources = slices.Insert(s.sources, i, source)
	return s
}

// Get returns the highest registered source no newer than v.
//
// OpenGL 3.2 and above in core profile do not support GLSL below
// 1.50, so for v >= 1.50 sources older than 1.50 are not
// considered and Get may report false.
func (s *Shaders[S]) Get(v GLSL) (S, bool) {
	low := GLSL110
	if v >= GLSL150 {
		low = GLSL150
	}
	var (
		source S
		found  bool
	)
	for i, ver := range s.versions {
		if ver > v {
			break
		}
		if ver < low {
			continue
		}
		source, found = s.sources[i], true
	}
	return source, found
}
