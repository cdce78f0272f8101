// Package asset embeds the default course shipped with the binary
package asset

import (
	"embed"
	"io/fs"

	"github.com/lixenwraith/on-tour/course"
)

// CourseManifest is the manifest path inside FS
const CourseManifest = "course.toml"

//go:embed course.toml maps/*.txt
var files embed.FS

// FS exposes the embedded course files
func FS() fs.FS {
	return files
}

// DefaultCourse loads the embedded course
func DefaultCourse() (course.Course, error) {
	return course.LoadCourse(files, CourseManifest)
}
