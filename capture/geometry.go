package capture

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"
)

// geomRe matches geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// ParseGeometry parses an X11/Tk style geometry string such as
// "640x480+100+50" into the screen rectangle it describes.
func ParseGeometry(g string) (image.Rectangle, error) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, fmt.Errorf("invalid geometry %q, want WxH+X+Y", g)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("geometry %q has empty size", g)
	}
	return image.Rect(x, y, x+w, y+h), nil
}
