// Package appimage assembles the relocatable AppDir bundle and drives the
// external bundling tools (linuxdeploy, with appimagetool as fallback) to
// produce the final AppImage artifact.
package appimage
