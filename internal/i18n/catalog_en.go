package i18n

var catalogEN = map[Key]string{
	KeyProgressStepSubmitted: "Application Submitted",
	KeyProgressStepReview:    "Department Review",
	KeyProgressStepDecided:   "Approved & Disbursed",

	KeyAdvisoryNotSeededTitle: "Action Required!",
	KeyAdvisoryNotSeededBody:  "Your account is not DBT-ready. Please visit your bank branch immediately and submit the 'Aadhaar Seeding Consent Form' to receive your benefits.",
	KeyAdvisoryPendingTitle:   "Patience is Key!",
	KeyAdvisoryPendingBody:    "Your account is DBT-ready. Your scholarship application is currently being processed by the department.",
	KeyAdvisoryApprovedTitle:  "Good News!",
	KeyAdvisoryApprovedBody:   "Your scholarship has been approved. The funds will be credited to your seeded account shortly.",
	KeyAdvisoryRejectedTitle:  "Important Update!",
	KeyAdvisoryRejectedBody:   "While your account is DBT-ready, your scholarship application was rejected. Please check the scholarship portal for specific reasons.",

	KeyGrievanceNextStepBank: "Please contact your bank branch within 48 hours with your Tracking ID. They are responsible for resolving seeding issues.",
	KeyGrievanceNextStepNPCI: "If the bank does not resolve the issue within 7 working days, you can escalate the matter to NPCI through their official portal, referencing this Tracking ID.",

	KeyActionStep1Title: "Visit Your Bank Branch",
	KeyActionStep1Body:  "Go to the bank branch where you have your primary student account. This is the account you want your scholarship money to be credited to.",
	KeyActionStep1Note:  "What to take: Your original Aadhaar card and a photocopy.",
	KeyActionStep2Title: "Request the Correct Form",
	KeyActionStep2Body:  "Ask the bank official for the \"Aadhaar Seeding and DBT Consent Form\" (sometimes called 'NPCI Mapper Consent Form').",
	KeyActionStep2Note:  "Important: Do not just fill a KYC update form. You must specifically give consent for DBT.",
	KeyActionStep3Title: "Fill and Submit the Form",
	KeyActionStep3Body:  "Fill out the form carefully, ensuring your name, account number, and Aadhaar number are correct.",
	KeyActionStep3Note:  "Submit the form along with the Aadhaar photocopy. Always ask for a stamped acknowledgement receipt as proof of submission.",
	KeyActionStep4Title: "Wait and Verify",
	KeyActionStep4Body:  "It can take a few business days for the bank to update your status in the NPCI Mapper.",
	KeyActionStep4Note:  "After 3-5 days, use our Unified Status Checker to confirm that your account is now 'Active' and correctly seeded.",
	KeyActionVideoTitle: "How to Fill the Aadhaar Seeding Form",
	KeyActionVideoBody:  "A visual guide to avoid common mistakes.",

	KeyLearnTopic1Title: "What is DBT and why does it matter?",
	KeyLearnTopic1Body:  "Direct Benefit Transfer sends scholarships and subsidies straight to your bank account, with no middlemen. The government routes every payment through the NPCI mapper, so your account must be correctly seeded to receive anything.",
	KeyLearnTopic2Title: "Aadhaar-linked vs Aadhaar-seeded",
	KeyLearnTopic2Body:  "Linking Aadhaar for KYC is not the same as seeding. Seeding records your consent in the NPCI mapper and marks one account as the destination for DBT. Many payment failures happen because the account is linked but never seeded.",
	KeyLearnTopic3Title: "Common mistakes that block payments",
	KeyLearnTopic3Body:  "Name mismatches between Aadhaar and the bank record, a closed or dormant seeded account, and seeding consent given at the wrong bank are the three most common reasons a transfer bounces.",

	KeyQuizFeedbackGood: "Excellent! You understand DBT seeding well and are ready to guide others.",
	KeyQuizFeedbackOK:   "Good effort! Review the learning material once more to close the gaps.",
	KeyQuizFeedbackBad:  "Please go through the Learn Center again before acting on your account.",

	KeyQuizQ1:     "What does DBT stand for?",
	KeyQuizQ1OptA: "Direct Benefit Transfer",
	KeyQuizQ1OptB: "Direct Bank Transaction",
	KeyQuizQ1OptC: "Digital Banking Tool",
	KeyQuizQ1OptD: "Department of Banking and Treasury",

	KeyQuizQ2:     "What does 'Aadhaar seeding' mean?",
	KeyQuizQ2OptA: "Opening a new bank account",
	KeyQuizQ2OptB: "Linking your Aadhaar number to your bank account for DBT",
	KeyQuizQ2OptC: "Updating your mobile number at the bank",
	KeyQuizQ2OptD: "Applying for a scholarship online",

	KeyQuizQ3:     "Which form must you submit at the bank to become DBT-ready?",
	KeyQuizQ3OptA: "KYC update form",
	KeyQuizQ3OptB: "Account opening form",
	KeyQuizQ3OptC: "Aadhaar Seeding and DBT Consent Form",
	KeyQuizQ3OptD: "Scholarship application form",

	KeyQuizQ4:     "Your status shows 'not seeded'. Whom should you contact first?",
	KeyQuizQ4OptA: "The scholarship portal helpline",
	KeyQuizQ4OptB: "NPCI directly",
	KeyQuizQ4OptC: "The district education office",
	KeyQuizQ4OptD: "Your bank branch",

	KeyQuizQ5:     "If Aadhaar is linked to several accounts, where is the DBT money sent?",
	KeyQuizQ5OptA: "It is split across all linked accounts",
	KeyQuizQ5OptB: "To the account most recently seeded in the NPCI mapper",
	KeyQuizQ5OptC: "To the oldest account",
	KeyQuizQ5OptD: "It is returned to the government",
}
