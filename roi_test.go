package pixbuf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoiClamp(t *testing.T) {
	im := New(10, 10)
	tests := []struct {
		name       string
		x, y, w, h int
		want       Roi
	}{
		{"inside", 2, 3, 4, 5, Roi{X: 2, Y: 3, W: 4, H: 5}},
		{"full", 0, 0, 10, 10, Roi{X: 0, Y: 0, W: 10, H: 10}},
		{"corner overflow", 8, 8, 5, 5, Roi{X: 8, Y: 8, W: 2, H: 2}},
		{"origin past width", 12, 3, 1, 1, Roi{X: 10, Y: 3, W: 0, H: 1}},
		{"origin past height", 3, 12, 1, 1, Roi{X: 3, Y: 10, W: 1, H: 0}},
		{"negative origin", -2, -2, 5, 5, Roi{X: 0, Y: 0, W: 3, H: 3}},
		{"zero size", 5, 5, 0, 0, Roi{X: 5, Y: 5, W: 0, H: 0}},
		{"negative size", 5, 5, -3, -3, Roi{X: 5, Y: 5, W: 0, H: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := im.Roi(tc.x, tc.y, tc.w, tc.h)
			tc.want.image = im
			if got != tc.want {
				t.Errorf("Roi(%d, %d, %d, %d) = {%d %d %d %d}, want {%d %d %d %d}",
					tc.x, tc.y, tc.w, tc.h,
					got.X, got.Y, got.W, got.H,
					tc.want.X, tc.want.Y, tc.want.W, tc.want.H)
			}
		})
	}
}

// Every clamped region must fit inside its source, whatever was requested.
func TestRoiAlwaysInBounds(t *testing.T) {
	im := New(10, 10)
	vals := []int{-3, 0, 5, 8, 10, 13}
	for _, x := range vals {
		for _, y := range vals {
			for _, w := range vals {
				for _, h := range vals {
					r := im.Roi(x, y, w, h)
					if r.X < 0 || r.Y < 0 || r.W < 0 || r.H < 0 ||
						r.X+r.W > im.Width() || r.Y+r.H > im.Height() {
						t.Fatalf("Roi(%d, %d, %d, %d) = {%d %d %d %d} escapes 10x10 source",
							x, y, w, h, r.X, r.Y, r.W, r.H)
					}
				}
			}
		}
	}
}

func TestRoiDraw(t *testing.T) {
	src, err := FromData(4, 3, numbered(12))
	if err != nil {
		t.Fatal(err)
	}
	dst := newRecordingSurface(6, 6)
	src.Roi(1, 1, 2, 2).Draw(dst, 3, 0)

	// One blit per scan line, each a full-stride step apart in the source.
	if len(dst.calls) != 2 {
		t.Fatalf("Roi draw made %d blit calls, want 2", len(dst.calls))
	}
	for i, call := range dst.calls {
		if call.x != 3 || call.y != i || call.w != 2 || call.h != 1 {
			t.Errorf("call %d rectangle = (%d, %d, %d, %d), want (3, %d, 2, 1)",
				i, call.x, call.y, call.w, call.h, i)
		}
		wantRow := src.Data()[(1+i)*4+1 : (1+i)*4+3]
		if diff := cmp.Diff(wantRow, call.pix[:2]); diff != "" {
			t.Errorf("call %d pixels mismatch (-want +got):\n%s", i, diff)
		}
	}

	want := New(6, 6)
	copy(want.DataMut()[0*6+3:], src.Data()[5:7])
	copy(want.DataMut()[1*6+3:], src.Data()[9:11])
	if diff := cmp.Diff(want.Data(), dst.Data()); diff != "" {
		t.Errorf("surface pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestRoiDrawZeroSize(t *testing.T) {
	im := New(4, 4)
	dst := newRecordingSurface(4, 4)
	im.Roi(4, 4, 3, 3).Draw(dst, 0, 0)
	if len(dst.calls) != 0 {
		t.Errorf("zero-size region made %d blit calls, want 0", len(dst.calls))
	}
}

func TestRoiDrawBottomEdge(t *testing.T) {
	src, err := FromData(4, 3, numbered(12))
	if err != nil {
		t.Fatal(err)
	}
	dst := newRecordingSurface(4, 4)
	src.Roi(2, 1, 2, 2).Draw(dst, 0, 0)

	if len(dst.calls) != 2 {
		t.Fatalf("Roi draw made %d blit calls, want 2", len(dst.calls))
	}
	// Final scan line ends at the last pixel of the backing array.
	last := dst.calls[1]
	wantRow := src.Data()[10:12]
	if diff := cmp.Diff(wantRow, last.pix); diff != "" {
		t.Errorf("bottom row pixels mismatch (-want +got):\n%s", diff)
	}
}
