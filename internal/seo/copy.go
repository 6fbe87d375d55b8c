package seo

import "github.com/mkhubaishan/mk-portfolio/internal/locale"

type localeCopy struct {
	siteName    string
	title       string
	template    string
	description string
	keywords    []string
	altText     string
}

var arabicCopy = localeCopy{
	siteName:    "مهند خالد حبيشان",
	title:       "مهند خالد حبيشان | مختص نظم معلومات ومطور مواقع",
	template:    "%s | بورتفوليو مهند خالد",
	description: "بورتفوليو مهند خالد حبيشان — مختص في إدارة نظم المعلومات ومطور مواقع من عدن، اليمن. خبرة في Next.js وLaravel وTypeScript وTailwind، وإدارة VPS سحابي (Linux/Nginx/SSL) مع تركيز على الأداء والأمان وبناء حلول رقمية مؤسسية.",
	keywords: []string{
		"مهند خالد حبيشان", "بورتفوليو", "مختص نظم معلومات", "نظم معلومات إدارية", "مطور مواقع",
		"Next.js", "Laravel", "TypeScript", "Tailwind CSS", "JavaScript", "PHP", "SQL", "Linux",
		"VPS", "Nginx", "SSL", "إدارة السيرفر", "نشر التطبيقات", "عدن", "اليمن",
	},
	altText: "بورتفوليو مهند خالد حبيشان",
}

var englishCopy = localeCopy{
	siteName:    "Mohanad Khaled Hubaishan",
	title:       "Mohanad Khaled Hubaishan | Information Systems & Web Developer",
	template:    "%s | MK Portfolio",
	description: "Portfolio of Mohanad Khaled Hubaishan — Information Systems Specialist & Web Developer based in Aden, Yemen. Experienced in Next.js, Laravel, TypeScript, Tailwind CSS, and cloud VPS administration (Linux/Nginx/SSL), focused on performance, security, and scalable institutional solutions.",
	keywords: []string{
		"Mohanad Khaled Hubaishan", "portfolio", "Information Systems Specialist",
		"Management Information Systems", "Web Developer", "Frontend Developer",
		"Full Stack Developer", "Next.js", "Laravel", "TypeScript", "Tailwind CSS", "JavaScript",
		"PHP", "SQL", "Linux", "Cloud VPS", "Nginx", "SSL", "Server administration", "Deployment",
		"Aden", "Yemen",
	},
	altText: "Mohanad Khaled Hubaishan Portfolio",
}

func copyFor(l locale.Locale) localeCopy {
	if l == locale.Arabic {
		return arabicCopy
	}
	return englishCopy
}
