package content

// Default is the portfolio rendered by the site.
var Default = Portfolio{
	Experiences: []Experience{
		{
			Icon:  "server",
			Title: Text{En: "Web Developer — Ministry of Finance (MOF)", Ar: "مطور مواقع — وزارة المالية"},
			Dates: Text{En: "Feb 2025 — Present", Ar: "فبراير 2025 — حتى الآن"},
			BulletsEn: []string{
				"Developed and launched the official website using Next.js and Laravel.",
				"Managed a cloud VPS (Linux): Nginx, SSL, deployments, monitoring, and security hardening.",
				"Optimized server performance and implemented backup strategies to ensure stability.",
				"Set up and maintained business email services for internal communication.",
			},
			BulletsAr: []string{
				"تطوير وإطلاق الموقع الرسمي باستخدام Next.js و Laravel.",
				"إدارة VPS سحابي (Linux): إعداد Nginx و SSL والنشر والمراقبة وتعزيز الأمان.",
				"تحسين أداء الخادم وتطبيق استراتيجيات النسخ الاحتياطي لضمان الاستقرار.",
				"إعداد وإدارة البريد المؤسسي لدعم التواصل الداخلي.",
			},
		},
		{
			Icon:      "code",
			Title:     Text{En: "Teacher (C++ & C#) — University of Science and Technology", Ar: "معيد (C++ و C#) — جامعة العلوم والتكنولوجيا"},
			Dates:     Text{En: "Sep 2024 — Nov 2024", Ar: "سبتمبر 2024 — نوفمبر 2024"},
			BulletsEn: []string{"Improved student outcomes through interactive learning activities (+10% average test scores)."},
			BulletsAr: []string{"تحسين نتائج الطلاب عبر أنشطة تفاعلية (+10% متوسط الاختبارات)."},
		},
		{
			Icon:      "award",
			Title:     Text{En: "IT Internship — Aden Refinery Company", Ar: "تدريب تقني — شركة مصافي عدن"},
			Dates:     Text{En: "Sep 2024 — Oct 2024", Ar: "سبتمبر 2024 — أكتوبر 2024"},
			BulletsEn: []string{"Troubleshooting hardware/software, basic networking, and IT support."},
			BulletsAr: []string{"استكشاف أعطال الأجهزة والبرمجيات، وشبكات أساسية، ودعم تقني."},
		},
	},
	SkillGroups: []SkillGroup{
		{
			Icon:  "code",
			Title: Text{En: "Web Development", Ar: "تطوير الويب"},
			Items: []string{"Next.js", "React", "TypeScript", "Tailwind CSS", "Responsive UI", "REST APIs", "github", "laravel", "motion"},
		},
		{
			Icon:  "server",
			Title: Text{En: "Cloud & Server", Ar: "السيرفر والسحابة"},
			Items: []string{"Linux VPS", "SSL/TLS", "Deployment", "Backups", "Basic monitoring/logs", "google workspace"},
		},
		{
			Icon:  "award",
			Title: Text{En: "Professional", Ar: "مهنية"},
			Items: []string{"Collaboration", "Documentation", "Problem Solving", "Time Management", "Risk Awareness", "project management"},
		},
	},
	Courses: []Course{
		{Icon: "book", Name: Text{En: "Google Career Certificates — Foundations: Data, Data, Everywhere", Ar: "شهادات Google في أساسيات البيانات: البيانات في كل مكان"}},
		{Icon: "book", Name: Text{En: "Foundations of Cybersecurity — Google Career Certificates", Ar: "أساسيات الأمن السيبراني — شهادات Google"}},
		{Icon: "book", Name: Text{En: "Foundations of Project Management — Google Career Certificates", Ar: "أساسيات إدارة المشاريع — شهادات Google"}},
		{Icon: "book", Name: Text{En: "Human Resources Analytics — UCI (Coursera)", Ar: "تحليلات الموارد البشرية — جامعة كاليفورنيا في إيرفاين (Coursera)"}},
		{Icon: "book", Name: Text{En: "Principles of UX/UI Design — Meta (Coursera)", Ar: "مبادئ تصميم UX/UI — Meta (Coursera)"}},
	},
	Projects: []Project{
		{
			Slug:        "mof",
			Title:       Text{En: "Ministry of Finance Website", Ar: "موقع وزارة المالية"},
			Description: Text{En: "Official government website with a focus on performance, security, and reliability.", Ar: "الموقع الرسمي لوزارة المالية مع تركيز على الأداء والأمان والاعتمادية."},
			Tags:        []string{"Next.js", "Laravel", "VPS", "Linux", "Nginx", "SSL"},
			Href:        "https://mof-yemen.com",
			HasImage:    true,
			Image:       "/static/img/mof.png",
		},
		{
			Slug:        "chatbit",
			Title:       Text{En: "ChatBit Platform (Frontend)", Ar: "ChatBit (واجهات)"},
			Description: Text{En: "Modern landing page for a CRM-based platform using Next.js and a clean UI system.", Ar: "صفحة تعريفية حديثة لمنصة تعتمد على CRM باستخدام Next.js وبنية واجهات نظيفة."},
			Tags:        []string{"Next.js", "TypeScript", "Tailwind"},
			Href:        "https://chatbit-nxt.vercel.app/",
			HasImage:    true,
			Image:       "/static/img/cht.png",
		},
		{
			Slug:        "ahqaf",
			Title:       Text{En: "Ahqaf Website", Ar: "موقع الأحقاف"},
			Description: Text{En: "Content-focused website with user-friendly navigation.", Ar: "موقع يركز على عرض المحتوى وتجربة تصفح سهلة."},
			Tags:        []string{"Next.js", "UI", "Responsive"},
			Href:        "https://ahqaf.vercel.app/",
			HasImage:    true,
			Image:       "/static/img/ahq.png",
		},
		{
			Slug:        "travel",
			Title:       Text{En: "Travel Landing Page", Ar: "واجهة صفحة سفر"},
			Description: Text{En: "Tourism-focused landing page with modern design and responsive layout.", Ar: "صفحة تعريفية للسفر بتصميم حديث وتجاوب ممتاز."},
			Tags:        []string{"Next.js", "Landing Page", "Responsive"},
			Href:        "https://travel-landing-lemon.vercel.app/",
			HasImage:    true,
			Image:       "/static/img/air.png",
		},
		{
			Slug:        "bitx",
			Title:       Text{En: "BitX Portfolio", Ar: "بورتفوليو BitX"},
			Description: Text{En: "Portfolio-style website showcasing projects with a clean aesthetic.", Ar: "موقع بورتفوليو لعرض المشاريع بأسلوب نظيف ومرتب."},
			Tags:        []string{"Next.js", "Portfolio", "UX"},
			Href:        "https://bitx-protoflio.vercel.app/",
			HasImage:    true,
			Image:       "/static/img/bit.png",
		},
		{
			Slug:        "bab",
			Title:       Text{En: "Beyond Aden Bridge (B.A.B) — Graduation Project", Ar: "Beyond Aden Bridge (B.A.B) — مشروع تخرج"},
			Description: Text{En: "Full-stack e-commerce concept built as a graduation project (no public demo image).", Ar: "فكرة متجر إلكتروني (فل ستاك) كمشروع تخرج (بدون صورة عرض)."},
			Tags:        []string{"PHP", "JavaScript", "SQL", "HTML/CSS"},
			Href:        "#",
		},
	},
	Contact: Contact{
		Phone: "967782902986",
		Email: "mis.mdev@gmail.com",
		WhatsAppMessage: Text{
			En: "Hi Mohanad, I'd like to contact you about work.",
			Ar: "مرحبًا مهند، أريد التواصل معك بخصوص عمل.",
		},
	},
}
