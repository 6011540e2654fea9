package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "layout.brand", "DeSci Launch")
	message.SetString(lang, "layout.meta_description", "Community-driven, on-chain funding for decentralized science.")
	message.SetString(lang, "layout.footer", "DeSci Launch. Funding the future of science.")
	message.SetString(lang, "layout.nav.launchpad", "Launchpad")
	message.SetString(lang, "layout.nav.shop", "Shop")
	message.SetString(lang, "layout.nav.docs", "Docs")
	message.SetString(lang, "layout.nav.blog", "Blog")
	message.SetString(lang, "title.home", "DeSci Launch")
	message.SetString(lang, "title.launches", "Launchpad")

	// Wallet
	message.SetString(lang, "wallet.connect", "Connect")
	message.SetString(lang, "wallet.disconnect", "Disconnect")
	message.SetString(lang, "wallet.address_label", "Sui wallet address")
	message.SetString(lang, "wallet.address_placeholder", "0x…")

	// Homepage
	message.SetString(lang, "home.hero.badge", "LIVE · DECENTRALIZED SCIENCE")
	message.SetString(lang, "home.hero.title", "Funding the Future of Science")
	message.SetString(lang, "home.hero.subtitle", "Accelerating decentralized, community-driven science through transparent on-chain funding.")
	message.SetString(lang, "home.hero.explore", "Explore Launchpad")
	message.SetString(lang, "home.hero.shop", "Visit Shop")
	message.SetString(lang, "home.hero.image_alt", "Laboratory research")
	message.SetString(lang, "home.about.title", "What is DeSci Launch?")
	message.SetString(lang, "home.about.body", "DeSci launchpads replace slow, centralized grant committees with community-driven funding models, often using tokenization and Decentralized Autonomous Organizations (DAOs). Researchers can crowdfund projects directly from a global audience, and all fund allocations are recorded on an immutable blockchain, ensuring everyone can see how money is used and promoting trust.")
	message.SetString(lang, "home.about.collaboration", "These platforms foster global, permissionless collaboration by . . .")
	message.SetString(lang, "home.about.docs", "Read the Docs")
	message.SetString(lang, "home.recent.title", "Recent Projects")
	message.SetString(lang, "home.recent.more", "View More")
	message.SetString(lang, "home.mission.title", "Our Mission")
	message.SetString(lang, "home.mission.body", "We are committed to accelerating scientific discovery by aligning incentives, transparency, and global collaboration.")
	message.SetString(lang, "home.mission.q1_2026", "Protocol launch & first cohorts")
	message.SetString(lang, "home.mission.q2_2026", "Protocol testing & debugging")
	message.SetString(lang, "home.mission.q3_2026", "DAO governance rollout")
	message.SetString(lang, "home.mission.q4_2026", "Cross-chain funding expansion")
	message.SetString(lang, "home.mission.q1_2027", "Adding new chains to the protocol")
	message.SetString(lang, "home.mission.q2_2027", "Institutional Adoption")
	message.SetString(lang, "home.mission.q3_2027", "Institutional partnerships")
	message.SetString(lang, "home.mission.q4_2027", "Growing the ecosystem")
	message.SetString(lang, "home.mission.q1_2028", "Global research marketplace")
	message.SetString(lang, "home.newsletter.title", "Stay Updated")
	message.SetString(lang, "home.newsletter.body", "Join our newsletter to get the latest breakthroughs in decentralized science delivered to your inbox.")
	message.SetString(lang, "home.newsletter.placeholder", "Enter your email")
	message.SetString(lang, "home.newsletter.submit", "Join Now")
	message.SetString(lang, "home.updates.title", "Recent Updates")
	message.SetString(lang, "home.updates.item_title", "Platform Update #%d")
	message.SetString(lang, "home.updates.item_body", "Progress update on protocol development and ecosystem growth.")
	message.SetString(lang, "home.updates.more", "More")
	message.SetString(lang, "home.cta.title", "Launch your research on-chain")
	message.SetString(lang, "home.cta.body", "Apply to raise funding and build in public.")
	message.SetString(lang, "home.cta.apply", "Apply to Launch")

	// Launch index
	message.SetString(lang, "launches.title", "Launchpad")
	message.SetString(lang, "launches.subtitle", "Research projects raising on-chain.")
	message.SetString(lang, "launches.empty", "No launches yet.")

	// Detail page
	message.SetString(lang, "detail.social.x", "X")
	message.SetString(lang, "detail.sentiment.title", "Community Sentiment")
	message.SetString(lang, "detail.sentiment.prompt", "How do you feel about this ipt?")
	message.SetString(lang, "detail.sentiment.positive", "%d%% POSITIVE")
	message.SetString(lang, "detail.sentiment.upvote", "Upvote")
	message.SetString(lang, "detail.sentiment.downvote", "Downvote")
	message.SetString(lang, "detail.raise.title", "Raise details")
	message.SetString(lang, "detail.raise.currency", "Raise Currency")
	message.SetString(lang, "detail.raise.hard_cap", "Hard Cap")
	message.SetString(lang, "detail.raise.soft_cap", "Soft Cap")
	message.SetString(lang, "detail.raise.ticket_size", "Ticket Size")
	message.SetString(lang, "detail.raise.price", "Price / Token")
	message.SetString(lang, "detail.raise.token_symbol", "Token Symbol")
	message.SetString(lang, "detail.raise.progress", "Progress (off-chain placeholder)")
	message.SetString(lang, "detail.address.token", "Project Token Address")
	message.SetString(lang, "detail.address.raise", "SUI Raise Object / Address")
	message.SetString(lang, "detail.participate.title", "Participate")
	message.SetString(lang, "detail.participate.prompt", "Connect a Sui wallet to prepare for contributions. This demo uses a mock wallet connection.")
	message.SetString(lang, "detail.participate.connect", "Connect SUI Wallet")
	message.SetString(lang, "detail.participate.connected_as", "Connected as")
	message.SetString(lang, "detail.participate.disconnect", "Disconnect wallet")
	message.SetString(lang, "detail.swap.title", "Swap (Mock)")
	message.SetString(lang, "detail.swap.from", "From")
	message.SetString(lang, "detail.swap.to", "To")
	message.SetString(lang, "detail.swap.amount", "Amount")
	message.SetString(lang, "detail.swap.slippage", "Slippage")
	message.SetString(lang, "detail.swap.get_quote", "Get Quote")
	message.SetString(lang, "detail.swap.loading", "Loading...")
	message.SetString(lang, "detail.swap.execute", "Swap")
	message.SetString(lang, "detail.swap.working", "Working...")
	message.SetString(lang, "detail.swap.quote_empty", "Quote preview will appear here. (Endpoints can be connected later.)")
	message.SetString(lang, "detail.swap.quote_status", "Status")
	message.SetString(lang, "detail.swap.quote_route", "Route")
	message.SetString(lang, "detail.swap.quote_expected", "Expected out")
	message.SetString(lang, "detail.tabs.about", "About")
	message.SetString(lang, "detail.tabs.team", "Team")
	message.SetString(lang, "detail.tabs.research", "Research Hypothesis")
	message.SetString(lang, "detail.tabs.value_capture", "Value Capture Model")
	message.SetString(lang, "detail.tabs.roadmap", "Roadmap")
	message.SetString(lang, "detail.about.title", "About the project")
	message.SetString(lang, "detail.about.key_details", "Key details")
	message.SetString(lang, "detail.about.status", "Status")
	message.SetString(lang, "detail.about.token", "Token")
	message.SetString(lang, "detail.about.raise_currency", "Raise currency")
	message.SetString(lang, "detail.market.title", "Market Overview")
	message.SetString(lang, "detail.market.tam", "Total addressable market")
	message.SetString(lang, "detail.market.per_patient", "Revenue / value capture per patient")
	message.SetString(lang, "detail.market.reach", "Patient reach / adoption")
	message.SetString(lang, "detail.team.placeholder", "Team details can be connected later.")
	message.SetString(lang, "detail.research.placeholder", "Research hypothesis content can be connected later.")
	message.SetString(lang, "detail.research.approach_title", "Problem / Approach")
	message.SetString(lang, "detail.research.approach_body", "Add structured sections here (summary, problems, impact, methodology).")
	message.SetString(lang, "detail.value_capture.utility", "Token utility + protocol fees (placeholder)")
	message.SetString(lang, "detail.value_capture.licensing", "Licensing / partnership revenue (placeholder)")
	message.SetString(lang, "detail.value_capture.community", "Community incentives & governance (placeholder)")
	message.SetString(lang, "detail.roadmap.milestone", "Milestone %d (placeholder)")
	message.SetString(lang, "detail.tokenomics.title", "Tokenomics")
	message.SetString(lang, "detail.tokenomics.distribution", "Token Distribution")
	message.SetString(lang, "detail.tokenomics.release", "Token Release Schedule")
	message.SetString(lang, "detail.tokenomics.total_supply", "Total Supply")
	message.SetString(lang, "detail.tokenomics.unlocked_axis", "TOKENS UNLOCKED")
	message.SetString(lang, "detail.tokenomics.start_label", "Dec 2025")
	message.SetString(lang, "detail.tokenomics.end_label", "Dec 2026")
	message.SetString(lang, "detail.feed.title", "Social Feed")
	message.SetString(lang, "detail.feed.subtitle", "X Feed")
	message.SetString(lang, "detail.feed.loading", "Loading tweets from @%s...")
	message.SetString(lang, "detail.feed.unavailable", "Twitter feed temporarily unavailable")
	message.SetString(lang, "detail.feed.unavailable_reason", "This may be due to rate limiting or connectivity issues")
	message.SetString(lang, "detail.feed.view_profile", "View @%s on X/Twitter")
	message.SetString(lang, "detail.feed.missing", "No X/Twitter URL available for this project.")
	message.SetString(lang, "detail.error.not_found", "Launch not found.")
	message.SetString(lang, "detail.error.load_failed", "Failed to load launch details.")
	message.SetString(lang, "detail.error.invalid_form", "The submitted form could not be read.")
	message.SetString(lang, "detail.error.invalid_vote", "Vote must be up or down.")
	message.SetString(lang, "detail.error.swap_busy", "A swap request is already in progress.")

	// Toasts
	message.SetString(lang, "toast.wallet_required.title", "Connect wallet")
	message.SetString(lang, "toast.wallet_required.description", "Please connect your Sui wallet to continue.")
	message.SetString(lang, "toast.quote_unavailable.title", "Quote unavailable")
	message.SetString(lang, "toast.quote_unavailable.description", "Swap quote endpoint is not connected yet.")
	message.SetString(lang, "toast.swap_submitted.title", "Swap submitted")
	message.SetString(lang, "toast.swap_submitted.description", "Your swap request was sent.")
	message.SetString(lang, "toast.swap_unavailable.title", "Swap unavailable")
	message.SetString(lang, "toast.swap_unavailable.description", "Swap execution endpoint is not connected yet.")
	message.SetString(lang, "toast.wallet_connected.title", "Wallet connected")
	message.SetString(lang, "toast.wallet_connected.description", "Your Sui wallet is ready.")
	message.SetString(lang, "toast.wallet_disconnected.title", "Wallet disconnected")
	message.SetString(lang, "toast.wallet_disconnected.description", "Connect again to participate.")
	message.SetString(lang, "toast.wallet_invalid.title", "Invalid address")
	message.SetString(lang, "toast.wallet_invalid.description", "Enter a Sui address starting with 0x.")

	// Errors
	message.SetString(lang, "web.error.page_title_not_found", "Not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you requested could not be found.")
	message.SetString(lang, "web.error.message_server_error", "We could not complete your request. Please try again.")
	message.SetString(lang, "web.error.action_back", "Back to launches")
	message.SetString(lang, "web.error.view_expired", "This page has expired, reload to continue.")
}
