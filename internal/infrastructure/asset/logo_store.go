// Package asset reads and writes the per-team logo files that sit next to
// the game database.
package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/platform/cache"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const DefaultLogoSize = 128

type LogoStore struct {
	size   int
	logger *logging.Logger
	scaled *cache.Store[image.Image]
}

func NewLogoStore(size int, logger *logging.Logger) *LogoStore {
	if size <= 0 {
		size = DefaultLogoSize
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LogoStore{size: size, logger: logger, scaled: cache.NewStore[image.Image](0)}
}

func (s *LogoStore) Size() int {
	return s.size
}

// PathFor returns the logo location for a team: dir/L{teamID}.png.
func PathFor(teamID, dir string) string {
	return filepath.Join(dir, "L"+teamID+".png")
}

// Load returns the team logo scaled to the store size. A missing file is
// not an error: the image is nil. Scaled images are cached until the file
// changes.
func (s *LogoStore) Load(ctx context.Context, teamID, dir string) (image.Image, error) {
	if err := checkTeamID(teamID); err != nil {
		return nil, err
	}

	path := PathFor(teamID, dir)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, assetError(err, "stat logo %s", path)
	}

	return s.scaled.GetOrLoad(ctx, cacheKey(path, info), func(ctx context.Context) (image.Image, error) {
		return s.decodeScaled(ctx, teamID, path)
	})
}

func (s *LogoStore) decodeScaled(ctx context.Context, teamID, path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, assetError(err, "open logo %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, assetError(err, "decode logo %s", path)
	}

	s.logger.DebugContext(ctx, "logo loaded", "team_id", teamID, "path", path)
	return scale(src, s.size), nil
}

func cacheKey(path string, info os.FileInfo) string {
	return path + "|" + strconv.FormatInt(info.ModTime().UnixNano(), 10) + "|" + strconv.FormatInt(info.Size(), 10)
}

// Replace decodes source and stores it as the team's PNG logo, overwriting
// any previous one. The image is stored unscaled.
func (s *LogoStore) Replace(ctx context.Context, teamID, dir, source string) error {
	if err := checkTeamID(teamID); err != nil {
		return err
	}

	in, err := os.Open(source)
	if err != nil {
		return assetError(err, "open image %s", source)
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return assetError(err, "decode image %s", source)
	}

	target := PathFor(teamID, dir)
	tmp, err := os.CreateTemp(dir, ".L"+teamID+"-*.png.tmp")
	if err != nil {
		return assetError(err, "create temp logo in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		return assetError(err, "encode logo %s", target)
	}
	if err := tmp.Close(); err != nil {
		return assetError(err, "write logo %s", target)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return assetError(err, "replace logo %s", target)
	}
	s.scaled.DeletePrefix(ctx, target+"|")

	s.logger.InfoContext(ctx, "logo replaced", "team_id", teamID, "source_format", format, "path", target)
	return nil
}

func scale(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func checkTeamID(teamID string) error {
	if strings.TrimSpace(teamID) == "" {
		return fmt.Errorf("%w: team id is required", apperr.ErrAsset)
	}
	if strings.ContainsAny(teamID, `/\`) || strings.Contains(teamID, "..") {
		return fmt.Errorf("%w: team id %q cannot name a logo file", apperr.ErrAsset, teamID)
	}
	return nil
}

func assetError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", apperr.ErrAsset, crerr.Wrapf(err, format, args...))
}
