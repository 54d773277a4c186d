package browser

// OpenerPath returns the platform utility that hands a URL to the user's
// default browser. Each one takes the URL as its only argument.
func OpenerPath(goos string) string {
	switch goos {
	case "darwin":
		return "/usr/bin/open"
	case "windows":
		return "explorer.exe"
	default:
		return "xdg-open"
	}
}
