// Package desktop generates and parses the freedesktop desktop entries
// shipped with the application: the launcher entry installed under
// usr/share/applications (and duplicated at the AppDir root) and the
// autostart variant written when the user enables start-at-login.
package desktop
