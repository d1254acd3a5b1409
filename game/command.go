package game

import "strings"

// ParseCommand splits a "/command arguments" message. The returned command is
// lowercased with any @botname suffix stripped. Non-commands yield empty strings.
func ParseCommand(text string) (cmd, args string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	parts := strings.SplitN(text, " ", 2)
	cmd = parts[0]
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}
	if at := strings.Index(cmd, "@"); at != -1 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), args
}

// AddressedToOther reports whether a command message carries an @mention for a
// different bot. Bare commands and mentions of ourselves are kept.
func AddressedToOther(text, botUsername string) bool {
	if botUsername == "" || !strings.Contains(text, "@") {
		return false
	}
	firstToken := strings.Fields(text)[0]
	at := strings.Index(firstToken, "@")
	if at == -1 {
		return false
	}
	mentioned := firstToken[at+1:]
	return !strings.EqualFold(mentioned, botUsername)
}
