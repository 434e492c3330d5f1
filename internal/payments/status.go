package payments

// ClassifyDecline maps a processor decline code to a status label. Codes that
// suggest a genuine card which failed for an operational reason are "live";
// everything else, including no code at all, is "false".
func ClassifyDecline(code string) string {
	switch code {
	case "incorrect_cvc", "insufficient_funds":
		return StatusLive
	default:
		return StatusFalse
	}
}
