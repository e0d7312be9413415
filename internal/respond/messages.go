package respond

// Fixed pipeline messages. All response text is pre-authored; nothing here
// is synthesized at query time.
const (
	// Disclaimer is appended to every answer that is not blocked or
	// rejected.
	Disclaimer = "Disclaimer: This information is for general guidance only. " +
		"Please verify with official bank documents or contact your branch " +
		"for the most accurate and up-to-date information. Rates and terms " +
		"are subject to change."

	// UnsafeMessage is the terminal response for queries the guardrail
	// classifies as unsafe.
	UnsafeMessage = "I'm sorry, but I cannot assist with that request. " +
		"This assistant is designed to help with legitimate banking, financial services, " +
		"and insurance queries only. If you have a genuine banking concern, " +
		"please rephrase your question."

	// OutOfDomainMessage is the terminal response for queries outside the
	// BFSI domain.
	OutOfDomainMessage = "I appreciate your query, but I'm specifically designed to assist with " +
		"Banking, Financial Services, and Insurance (BFSI) topics only. " +
		"I can help you with loan eligibility and applications, EMI schedules, " +
		"interest rates and charges, credit and debit card services, " +
		"transactions (UPI, NEFT, RTGS, IMPS), insurance policies and claims, " +
		"account services and KYC, and grievance redressal. " +
		"Please ask a BFSI-related question and I'll be happy to help!"

	// DefaultGuidance is returned when no category template matches.
	DefaultGuidance = "Thank you for your query. I can help with loan eligibility, EMI calculations, " +
		"interest rates, credit scores, documentation, card services, transactions, " +
		"insurance, account services, and grievance redressal. Could you please provide " +
		"more details about what you'd like to know?"
)
