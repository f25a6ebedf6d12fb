package docai

import "finsight/internal/normalizer"

// receiptPrompt asks for the single-transaction receipt shape the normalizer
// expects.
const receiptPrompt = `You are a financial data extraction expert. Analyze this receipt image and extract the purchase in a precise JSON format:
{
  "amount": number (the total amount paid),
  "merchant": "the merchant or store name",
  "category": "an optional spending category if obvious, otherwise omit"
}

Important:
- Use the final total including tax, as a plain number
- Keep the merchant name exactly as printed
- Provide only the JSON response, no additional text`

// statementPrompt asks for the multi-transaction statement shape the
// normalizer expects.
const statementPrompt = `You are a financial data extraction expert. Please analyze this bank statement and extract all transactions in a precise JSON format:
{
  "transactions": [
    {
      "date": "YYYY-MM-DD",
      "description": "exact transaction description",
      "amount": number (use positive for credits like salary, negative for debits like purchases)
    }
  ]
}

Important:
- Keep the exact descriptions as shown in the statement
- Maintain the exact dates in YYYY-MM-DD format
- Use negative numbers for expenses/debits and positive for income/credits
- Provide only the JSON response, no additional text`

// promptFor returns the extraction prompt for a document source.
func promptFor(source normalizer.Source) (string, bool) {
	switch source {
	case normalizer.SourceReceipt:
		return receiptPrompt, true
	case normalizer.SourceStatement:
		return statementPrompt, true
	default:
		return "", false
	}
}
