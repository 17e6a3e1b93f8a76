package i18n

var catalogHI = map[Key]string{
	KeyProgressStepSubmitted: "आवेदन जमा हुआ",
	KeyProgressStepReview:    "विभाग द्वारा समीक्षा",
	KeyProgressStepDecided:   "स्वीकृत और भुगतान",

	KeyAdvisoryNotSeededTitle: "कार्रवाई आवश्यक!",
	KeyAdvisoryNotSeededBody:  "आपका खाता DBT के लिए तैयार नहीं है। कृपया तुरंत अपनी बैंक शाखा जाएँ और लाभ प्राप्त करने के लिए 'आधार सीडिंग सहमति फॉर्म' जमा करें।",
	KeyAdvisoryPendingTitle:   "धैर्य रखें!",
	KeyAdvisoryPendingBody:    "आपका खाता DBT के लिए तैयार है। आपका छात्रवृत्ति आवेदन विभाग द्वारा संसाधित किया जा रहा है।",
	KeyAdvisoryApprovedTitle:  "खुशखबरी!",
	KeyAdvisoryApprovedBody:   "आपकी छात्रवृत्ति स्वीकृत हो गई है। राशि शीघ्र ही आपके सीडेड खाते में जमा की जाएगी।",
	KeyAdvisoryRejectedTitle:  "महत्वपूर्ण सूचना!",
	KeyAdvisoryRejectedBody:   "आपका खाता DBT के लिए तैयार है, लेकिन आपका छात्रवृत्ति आवेदन अस्वीकृत कर दिया गया। विशेष कारणों के लिए कृपया छात्रवृत्ति पोर्टल देखें।",

	KeyGrievanceNextStepBank: "कृपया 48 घंटे के भीतर अपनी ट्रैकिंग आईडी के साथ अपनी बैंक शाखा से संपर्क करें। सीडिंग की समस्याएँ सुलझाना बैंक की जिम्मेदारी है।",
	KeyGrievanceNextStepNPCI: "यदि बैंक 7 कार्य दिवसों में समस्या का समाधान नहीं करता, तो आप इसी ट्रैकिंग आईडी के साथ NPCI के आधिकारिक पोर्टल पर मामला आगे बढ़ा सकते हैं।",

	KeyActionStep1Title: "अपनी बैंक शाखा जाएँ",
	KeyActionStep1Body:  "उस बैंक शाखा में जाएँ जहाँ आपका मुख्य छात्र खाता है। यही वह खाता है जिसमें आप अपनी छात्रवृत्ति राशि चाहते हैं।",
	KeyActionStep1Note:  "साथ ले जाएँ: अपना मूल आधार कार्ड और एक फोटोकॉपी।",
	KeyActionStep2Title: "सही फॉर्म माँगें",
	KeyActionStep2Body:  "बैंक अधिकारी से \"आधार सीडिंग और DBT सहमति फॉर्म\" माँगें (कभी-कभी इसे 'NPCI मैपर सहमति फॉर्म' कहा जाता है)।",
	KeyActionStep2Note:  "महत्वपूर्ण: केवल KYC अपडेट फॉर्म न भरें। आपको विशेष रूप से DBT के लिए सहमति देनी होगी।",
	KeyActionStep3Title: "फॉर्म भरें और जमा करें",
	KeyActionStep3Body:  "फॉर्म सावधानी से भरें और सुनिश्चित करें कि आपका नाम, खाता संख्या और आधार संख्या सही हैं।",
	KeyActionStep3Note:  "आधार की फोटोकॉपी के साथ फॉर्म जमा करें। प्रमाण के रूप में हमेशा मुहर लगी पावती रसीद माँगें।",
	KeyActionStep4Title: "प्रतीक्षा करें और सत्यापित करें",
	KeyActionStep4Body:  "बैंक को NPCI मैपर में आपकी स्थिति अपडेट करने में कुछ कार्य दिवस लग सकते हैं।",
	KeyActionStep4Note:  "3-5 दिनों के बाद हमारे स्टेटस चेकर से पुष्टि करें कि आपका खाता अब 'सक्रिय' और सही ढंग से सीडेड है।",
	KeyActionVideoTitle: "आधार सीडिंग फॉर्म कैसे भरें",
	KeyActionVideoBody:  "सामान्य गलतियों से बचने के लिए एक दृश्य मार्गदर्शिका।",

	KeyLearnTopic1Title: "DBT क्या है और यह क्यों महत्वपूर्ण है?",
	KeyLearnTopic1Body:  "डायरेक्ट बेनिफिट ट्रांसफर छात्रवृत्ति और सब्सिडी बिना किसी बिचौलिए के सीधे आपके बैंक खाते में भेजता है। सरकार हर भुगतान NPCI मैपर के माध्यम से भेजती है, इसलिए कुछ भी प्राप्त करने के लिए आपका खाता सही ढंग से सीडेड होना चाहिए।",
	KeyLearnTopic2Title: "आधार-लिंक्ड बनाम आधार-सीडेड",
	KeyLearnTopic2Body:  "KYC के लिए आधार लिंक करना सीडिंग नहीं है। सीडिंग NPCI मैपर में आपकी सहमति दर्ज करती है और एक खाते को DBT के गंतव्य के रूप में चिह्नित करती है। कई भुगतान इसलिए विफल होते हैं क्योंकि खाता लिंक्ड तो है पर कभी सीड नहीं हुआ।",
	KeyLearnTopic3Title: "भुगतान रोकने वाली सामान्य गलतियाँ",
	KeyLearnTopic3Body:  "आधार और बैंक रिकॉर्ड में नाम का अंतर, बंद या निष्क्रिय सीडेड खाता, और गलत बैंक में दी गई सीडिंग सहमति - ये तीन सबसे आम कारण हैं जिनसे ट्रांसफर विफल होता है।",

	KeyQuizFeedbackGood: "बहुत बढ़िया! आप DBT सीडिंग को अच्छी तरह समझते हैं और दूसरों का मार्गदर्शन कर सकते हैं।",
	KeyQuizFeedbackOK:   "अच्छा प्रयास! कमी पूरी करने के लिए सीखने की सामग्री एक बार फिर देखें।",
	KeyQuizFeedbackBad:  "कृपया अपने खाते पर कोई कदम उठाने से पहले लर्न सेंटर दोबारा पढ़ें।",

	KeyQuizQ1:     "DBT का पूरा नाम क्या है?",
	KeyQuizQ1OptA: "डायरेक्ट बेनिफिट ट्रांसफर",
	KeyQuizQ1OptB: "डायरेक्ट बैंक ट्रांजैक्शन",
	KeyQuizQ1OptC: "डिजिटल बैंकिंग टूल",
	KeyQuizQ1OptD: "बैंकिंग और कोष विभाग",

	KeyQuizQ2:     "'आधार सीडिंग' का क्या अर्थ है?",
	KeyQuizQ2OptA: "नया बैंक खाता खोलना",
	KeyQuizQ2OptB: "DBT के लिए अपने आधार नंबर को बैंक खाते से जोड़ना",
	KeyQuizQ2OptC: "बैंक में मोबाइल नंबर अपडेट करना",
	KeyQuizQ2OptD: "ऑनलाइन छात्रवृत्ति के लिए आवेदन करना",

	KeyQuizQ3:     "DBT-तैयार बनने के लिए बैंक में कौन सा फॉर्म जमा करना होता है?",
	KeyQuizQ3OptA: "KYC अपडेट फॉर्म",
	KeyQuizQ3OptB: "खाता खोलने का फॉर्म",
	KeyQuizQ3OptC: "आधार सीडिंग और DBT सहमति फॉर्म",
	KeyQuizQ3OptD: "छात्रवृत्ति आवेदन फॉर्म",

	KeyQuizQ4:     "आपकी स्थिति 'सीडेड नहीं' दिखाती है। सबसे पहले किससे संपर्क करें?",
	KeyQuizQ4OptA: "छात्रवृत्ति पोर्टल हेल्पलाइन",
	KeyQuizQ4OptB: "सीधे NPCI से",
	KeyQuizQ4OptC: "जिला शिक्षा कार्यालय",
	KeyQuizQ4OptD: "अपनी बैंक शाखा",

	KeyQuizQ5:     "यदि आधार कई खातों से जुड़ा है, तो DBT राशि कहाँ भेजी जाती है?",
	KeyQuizQ5OptA: "सभी जुड़े खातों में बाँट दी जाती है",
	KeyQuizQ5OptB: "NPCI मैपर में सबसे हाल में सीड किए गए खाते में",
	KeyQuizQ5OptC: "सबसे पुराने खाते में",
	KeyQuizQ5OptD: "सरकार को वापस कर दी जाती है",
}
