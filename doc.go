/*
Package cvdsim simulates color vision deficiencies by remapping sRGB colors
through 3x3 transformation matrices applied in linear light.

The core surface is small: Simulate transforms a single RGBColor under a
Matrix with a blend strength, SimulateBuffer applies the same transform to
every pixel of a flat RGBA byte buffer, and SimulateImage to an
image.Image. The matrices subpackage carries the published simulation
matrices keyed by deficiency type and algorithm.
*/
package cvdsim

import "fmt"

type CvdsimVersion struct {
	Major, Minor, Patch uint
}

func (v CvdsimVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v CvdsimVersion) Equal(o CvdsimVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v CvdsimVersion) After(o CvdsimVersion) bool {
	switch {
	case v.Major == o.Major:
		switch {
		case v.Minor == o.Minor:
			return v.Patch > o.Patch
		case v.Minor > o.Minor:
			return true
		case v.Minor < o.Minor:
			return false
		}
	case v.Major > o.Major:
		return true
	case v.Major < o.Major:
		return false
	}
	return false
}

func (v CvdsimVersion) Before(o CvdsimVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = CvdsimVersion{0, 3, 0}
