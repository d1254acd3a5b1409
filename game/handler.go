package game

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
)

// Sender delivers replies to a chat. replyTo is a message ID, 0 for none.
type Sender interface {
	Send(chatID int64, text string, replyTo int) error
}

// Handler dispatches incoming messages to the guess-the-number game.
type Handler struct {
	store       StateStore
	sender      Sender
	rng         *rand.Rand
	botUsername string
}

// NewHandler wires the game against a state store and an outgoing sender.
func NewHandler(store StateStore, sender Sender, rng *rand.Rand, botUsername string) *Handler {
	return &Handler{
		store:       store,
		sender:      sender,
		rng:         rng,
		botUsername: botUsername,
	}
}

// HandleMessage processes one incoming text message: commands are dispatched,
// anything else is treated as a guess.
func (h *Handler) HandleMessage(chatID, userID int64, messageID int, text string) {
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		// In group chats, ignore commands addressed to a different bot.
		if AddressedToOther(text, h.botUsername) {
			return
		}
		cmd, args := ParseCommand(text)
		switch cmd {
		case "/start":
			h.handleStart(chatID, userID)
		case "/help":
			h.handleHelp(chatID, userID, messageID)
		case "/newgame":
			h.handleNewGame(chatID, userID)
		case "/range":
			h.handleRange(chatID, userID, args, messageID)
		default:
			h.send(chatID, "Unknown command. Try /help.", messageID)
		}
		return
	}

	h.handleGuess(chatID, userID, text, messageID)
}

func (h *Handler) handleStart(chatID, userID int64) {
	st := h.getOrCreateState(chatID, userID)
	st.Reset(h.rng)
	h.putState(chatID, userID, st)
	h.send(chatID, fmt.Sprintf(
		"Welcome to Number Guess!\n"+
			"I picked a number between %d and %d.\n"+
			"Send me your guess as a number.\n\n"+
			"Commands:\n"+
			"/newgame - start a fresh game\n"+
			"/range <min> <max> - set range and restart\n"+
			"/help - show help",
		st.MinVal, st.MaxVal), 0)
}

func (h *Handler) handleHelp(chatID, userID int64, messageID int) {
	st := h.getOrCreateState(chatID, userID)
	h.send(chatID, fmt.Sprintf(
		"How to play:\n"+
			"I'm thinking of a number between %d and %d.\n"+
			"Send a number; I'll reply 'higher' or 'lower' until you guess it.\n\n"+
			"Commands:\n"+
			"/start - greeting and start a game\n"+
			"/newgame - start a fresh game\n"+
			"/range <min> <max> - set range and restart\n"+
			"/help - show this help",
		st.MinVal, st.MaxVal), messageID)
}

func (h *Handler) handleNewGame(chatID, userID int64) {
	st := h.getOrCreateState(chatID, userID)
	st.Reset(h.rng)
	h.putState(chatID, userID, st)
	h.send(chatID, fmt.Sprintf(
		"New game started! Range: %d-%d. Send your first guess.",
		st.MinVal, st.MaxVal), 0)
}

func (h *Handler) handleRange(chatID, userID int64, args string, messageID int) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.send(chatID, "Usage: /range <min> <max>\nExample: /range 1 1000", messageID)
		return
	}
	minVal, errMin := strconv.Atoi(parts[0])
	maxVal, errMax := strconv.Atoi(parts[1])
	if errMin != nil || errMax != nil {
		h.send(chatID, "Please provide two integers. Example: /range 1 1000", messageID)
		return
	}
	if minVal >= maxVal {
		h.send(chatID, "Range must have min < max. Example: /range 1 1000", messageID)
		return
	}

	st, err := NewState(minVal, maxVal, h.rng)
	if err != nil {
		h.send(chatID, "Range must have min < max. Example: /range 1 1000", messageID)
		return
	}
	h.putState(chatID, userID, st)
	h.send(chatID, fmt.Sprintf(
		"Range set to %d-%d. New game started! Guess the number.",
		minVal, maxVal), 0)
}

func (h *Handler) handleGuess(chatID, userID int64, text string, messageID int) {
	st := h.getOrCreateState(chatID, userID)

	guess, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		h.send(chatID, fmt.Sprintf(
			"Please send a whole number.\n"+
				"Current range: %d-%d.\n"+
				"Use /help for commands.",
			st.MinVal, st.MaxVal), messageID)
		return
	}

	if guess < st.MinVal || guess > st.MaxVal {
		h.send(chatID, fmt.Sprintf(
			"Out of range. Please guess between %d and %d.",
			st.MinVal, st.MaxVal), messageID)
		return
	}

	st.Attempts++

	switch {
	case guess < st.Target:
		h.send(chatID, "Higher ⬆️", messageID)
	case guess > st.Target:
		h.send(chatID, "Lower ⬇️", messageID)
	default:
		st.Active = false
		h.send(chatID, fmt.Sprintf(
			"🎉 Correct! The number was %d.\n"+
				"Attempts: %d.\n\n"+
				"Play again with /newgame or change range with /range <min> <max>.",
			st.Target, st.Attempts), messageID)
	}

	h.putState(chatID, userID, st)
}

// getOrCreateState loads the player's game, starting a default one on first
// contact or on a store failure.
func (h *Handler) getOrCreateState(chatID, userID int64) State {
	st, err := h.store.Get(chatID, userID)
	if err != nil {
		log.Printf("[GameHandler] Failed to load state for chat=%d user=%d: %v", chatID, userID, err)
	}
	if st != nil {
		return *st
	}
	fresh, _ := NewState(DEFAULT_MIN, DEFAULT_MAX, h.rng)
	h.putState(chatID, userID, fresh)
	return fresh
}

func (h *Handler) putState(chatID, userID int64, st State) {
	if err := h.store.Put(chatID, userID, st); err != nil {
		log.Printf("[GameHandler] Failed to store state for chat=%d user=%d: %v", chatID, userID, err)
	}
}

func (h *Handler) send(chatID int64, text string, replyTo int) {
	if err := h.sender.Send(chatID, text, replyTo); err != nil {
		log.Printf("[GameHandler] Failed to send message to chat=%d: %v", chatID, err)
	}
}
