package analysis

import "regexp"

// clauseProfile carries everything the engine knows about one clause type.
type clauseProfile struct {
	Type        ClauseType
	Patterns    []*regexp.Regexp
	Explanation string
	Suggestions []string
}

// clauseProfiles is ordered by detection precedence; the general row is the
// fallback and is never matched.
var clauseProfiles = []clauseProfile{
	{
		Type:        ClausePenalty,
		Patterns:    patterns(`penalty|penalt|fine|forfeit|liquidated damages`),
		Explanation: "This clause specifies financial penalties or charges that may apply if certain conditions are not met. Make sure you understand all triggers for these penalties.",
		Suggestions: []string{
			"Negotiate a cap on maximum penalties",
			"Request a cure period before penalties apply",
			"Ensure penalties are proportionate to actual damages",
		},
	},
	{
		Type:        ClauseIndemnity,
		Patterns:    patterns(`indemnif|indemnity|hold harmless|defend and indemnify`),
		Explanation: "This indemnification clause requires one party to compensate the other for losses or damages. Review carefully who bears this responsibility and under what circumstances.",
		Suggestions: []string{
			"Seek mutual indemnification rather than one-sided",
			"Cap indemnity obligations at a reasonable amount",
			"Exclude indirect and consequential damages",
		},
	},
	{
		Type:        ClauseTermination,
		Patterns:    patterns(`terminat|cancel|end.*agreement|discontinue`),
		Explanation: "This section outlines how and when the agreement can be ended. Pay attention to notice periods, conditions for termination, and any consequences.",
		Suggestions: []string{
			"Ensure both parties have equal termination rights",
			"Negotiate for termination for convenience clause",
			"Request longer notice period if needed",
		},
	},
	{
		Type:        ClauseArbitration,
		Patterns:    patterns(`arbitrat|mediat|dispute resolution`),
		Explanation: "This establishes how disputes will be resolved - typically through arbitration rather than courts. Note the location, rules, and costs involved.",
		Suggestions: []string{
			"Consider if arbitration in your city is possible",
			"Clarify who bears arbitration costs",
			"Request option for expedited proceedings",
		},
	},
	{
		Type:        ClauseJurisdiction,
		Patterns:    patterns(`jurisdiction|governing law|venue|court.*shall`),
		Explanation: "This determines which courts and laws will govern the agreement. Consider the practical implications of the chosen jurisdiction.",
		Suggestions: []string{
			"Negotiate for jurisdiction in your state/city",
			"Consider practical aspects of distant jurisdiction",
			"Specify governing law explicitly",
		},
	},
	{
		Type:        ClauseAutoRenewal,
		Patterns:    patterns(`auto.*renew|automatic.*renewal|renew.*unless`),
		Explanation: "This clause automatically extends the agreement unless specific action is taken. Mark your calendar for the cancellation deadline.",
		Suggestions: []string{
			"Request removal of auto-renewal clause",
			"Negotiate for advance renewal notice requirement",
			"Add option to renegotiate terms before renewal",
		},
	},
	{
		Type:        ClauseLockIn,
		Patterns:    patterns(`lock.*in|minimum.*period|commit.*period|binding.*period`),
		Explanation: "This commits you to a minimum period before you can exit. Understand the financial implications of early termination.",
		Suggestions: []string{
			"Negotiate shorter lock-in period",
			"Request pro-rata refund for early termination",
			"Add performance-based exit provisions",
		},
	},
	{
		Type:        ClauseNonCompete,
		Patterns:    patterns(`non.*compet|not.*compete|restrict.*competition`),
		Explanation: "This restricts your ability to engage in competing activities. Review the scope, duration, and geographic limitations carefully.",
		Suggestions: []string{
			"Limit geographic scope of restriction",
			"Reduce duration of non-compete period",
			"Define competing activities more narrowly",
		},
	},
	{
		Type:        ClauseIPTransfer,
		Patterns:    patterns(`intellectual property|ip.*transfer|patent|copyright.*assign|trademark`),
		Explanation: "This relates to ownership of intellectual property. Clarify what IP is being transferred and what rights you retain.",
		Suggestions: []string{
			"Retain rights to pre-existing IP",
			"Negotiate license-back for transferred IP",
			"Clarify ownership of jointly developed IP",
		},
	},
	{
		Type:        ClauseConfidentiality,
		Patterns:    patterns(`confidential|non.*disclosure|nda|proprietary.*information`),
		Explanation: "This outlines obligations to keep certain information private. Understand what information is covered and for how long.",
		Suggestions: []string{
			"Define confidential information clearly",
			"Set reasonable time limits on confidentiality",
			"Include standard exceptions for public information",
		},
	},
	{
		Type:        ClausePayment,
		Patterns:    patterns(`payment|fee|compensation|remuneration|salary|amount.*payable`),
		Explanation: "This specifies payment terms including amounts, timing, and conditions. Ensure all financial terms are clear and acceptable.",
		Suggestions: []string{
			"Negotiate milestone-based payments",
			"Include late payment interest provisions",
			"Clarify currency and payment method",
		},
	},
	{
		Type:        ClauseLiability,
		Patterns:    patterns(`liabilit|liable|responsible|damages`),
		Explanation: "This addresses responsibility for damages or losses. Check for any caps on liability and exclusions.",
		Suggestions: []string{
			"Negotiate mutual limitation of liability",
			"Cap liability at contract value",
			"Exclude consequential damages for both parties",
		},
	},
	{
		Type:        ClauseGeneral,
		Explanation: "This is a general contractual provision. Review it in the context of the overall agreement.",
		Suggestions: []string{
			"Review this clause with legal counsel",
			"Ensure consistency with other contract terms",
			"Clarify any ambiguous language",
		},
	},
}

var profileByType = func() map[ClauseType]*clauseProfile {
	m := make(map[ClauseType]*clauseProfile, len(clauseProfiles))
	for i := range clauseProfiles {
		m[clauseProfiles[i].Type] = &clauseProfiles[i]
	}
	return m
}()

// ClauseTypes lists every clause type in detection precedence order, general last.
func ClauseTypes() []ClauseType {
	out := make([]ClauseType, len(clauseProfiles))
	for i, p := range clauseProfiles {
		out[i] = p.Type
	}
	return out
}

func profileFor(t ClauseType) *clauseProfile {
	if p, ok := profileByType[t]; ok {
		return p
	}
	return profileByType[ClauseGeneral]
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}
